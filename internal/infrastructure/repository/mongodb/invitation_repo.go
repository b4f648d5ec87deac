package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/apperror"
	"github.com/ShaiBatonya/starquestDevServer/internal/domain/contract"
	"github.com/ShaiBatonya/starquestDevServer/internal/domain/entity"
)

type MongoInvitationRepository struct {
	collection *mongo.Collection
}

var _ contract.IInvitationRepository = (*MongoInvitationRepository)(nil)

func NewMongoInvitationRepository(collection *mongo.Collection) *MongoInvitationRepository {
	return &MongoInvitationRepository{collection: collection}
}

// EnsureIndexes creates the invitation collection's indexes:
//   - partial unique (workspace_id, invitee_email) scoped to pending,
//     the authoritative duplicate-invitation guard
//   - unique invitation_token for token lookups
//   - TTL on token_expires so stale pending records age out
func (r *MongoInvitationRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "workspace_id", Value: 1}, {Key: "invitee_email", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"status": entity.InvitationStatusPending}),
		},
		{
			Keys:    bson.D{{Key: "invitation_token", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "token_expires", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		},
	})
	return err
}

func (r *MongoInvitationRepository) CreateInvitation(ctx context.Context, invitation *entity.Invitation) error {
	_, err := r.collection.InsertOne(ctx, invitation)
	if mongo.IsDuplicateKeyError(err) {
		return contract.ErrDuplicatePending
	}
	return err
}

func (r *MongoInvitationRepository) GetInvitationByID(ctx context.Context, id string) (*entity.Invitation, error) {
	var invitation entity.Invitation
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&invitation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFound("invitation not found")
		}
		return nil, err
	}
	return &invitation, nil
}

func (r *MongoInvitationRepository) GetPendingByToken(ctx context.Context, token string, now time.Time) (*entity.Invitation, error) {
	var invitation entity.Invitation
	err := r.collection.FindOne(ctx, bson.M{
		"invitation_token": token,
		"status":           entity.InvitationStatusPending,
		"token_expires":    bson.M{"$gt": now},
	}).Decode(&invitation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.Validation("invitation is invalid or has expired")
		}
		return nil, err
	}
	return &invitation, nil
}

func (r *MongoInvitationRepository) FindPendingByEmail(ctx context.Context, email string, now time.Time) ([]entity.Invitation, error) {
	return r.findMany(ctx, bson.M{
		"invitee_email": entity.NormalizeEmail(email),
		"status":        entity.InvitationStatusPending,
		"token_expires": bson.M{"$gt": now},
	})
}

func (r *MongoInvitationRepository) FindPendingByWorkspaceAndEmail(ctx context.Context, workspaceID, email string, now time.Time) (*entity.Invitation, error) {
	var invitation entity.Invitation
	err := r.collection.FindOne(ctx, bson.M{
		"workspace_id":  workspaceID,
		"invitee_email": entity.NormalizeEmail(email),
		"status":        entity.InvitationStatusPending,
		"token_expires": bson.M{"$gt": now},
	}).Decode(&invitation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFound("no pending invitation for this email")
		}
		return nil, err
	}
	return &invitation, nil
}

func (r *MongoInvitationRepository) FindByWorkspace(ctx context.Context, workspaceID string, status *entity.InvitationStatus) ([]entity.Invitation, error) {
	filter := bson.M{"workspace_id": workspaceID}
	if status != nil {
		filter["status"] = *status
	}
	return r.findMany(ctx, filter)
}

func (r *MongoInvitationRepository) FindPendingByWorkspaces(ctx context.Context, workspaceIDs []string, now time.Time) ([]entity.Invitation, error) {
	if len(workspaceIDs) == 0 {
		return nil, nil
	}
	return r.findMany(ctx, bson.M{
		"workspace_id":  bson.M{"$in": workspaceIDs},
		"status":        entity.InvitationStatusPending,
		"token_expires": bson.M{"$gt": now},
	})
}

func (r *MongoInvitationRepository) findMany(ctx context.Context, filter bson.M) ([]entity.Invitation, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var invitations []entity.Invitation
	if err := cursor.All(ctx, &invitations); err != nil {
		return nil, err
	}
	return invitations, nil
}

// MarkAccepted flips a pending invitation to accepted. The status guard in
// the filter makes the transition single-shot under concurrent accepts.
func (r *MongoInvitationRepository) MarkAccepted(ctx context.Context, id string, at time.Time) error {
	return r.transition(ctx, id, bson.M{
		"status":      entity.InvitationStatusAccepted,
		"accepted_at": at,
		"updated_at":  at,
	})
}

func (r *MongoInvitationRepository) MarkCancelled(ctx context.Context, id string, at time.Time) error {
	return r.transition(ctx, id, bson.M{
		"status":       entity.InvitationStatusCancelled,
		"cancelled_at": at,
		"updated_at":   at,
	})
}

func (r *MongoInvitationRepository) transition(ctx context.Context, id string, set bson.M) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "status": entity.InvitationStatusPending},
		bson.M{"$set": set},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperror.Conflict("invitation is no longer pending")
	}
	return nil
}

func (r *MongoInvitationRepository) TouchInvitation(ctx context.Context, id string) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"updated_at": time.Now()}},
	)
	return err
}
