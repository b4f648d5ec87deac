package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/apperror"
	"github.com/ShaiBatonya/starquestDevServer/internal/domain/contract"
	"github.com/ShaiBatonya/starquestDevServer/internal/domain/entity"
)

type MongoUserRepository struct {
	collection *mongo.Collection
}

var _ contract.IUserRepository = (*MongoUserRepository)(nil)

func NewMongoUserRepository(collection *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{collection: collection}
}

// activeFilter excludes soft-deleted users from every lookup.
func activeFilter(conditions bson.M) bson.M {
	conditions["active"] = bson.M{"$ne": false}
	return conditions
}

func (r *MongoUserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	_, err := r.collection.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return apperror.Conflict("user with this email already exists")
	}
	return err
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var user entity.User
	err := r.collection.FindOne(ctx, activeFilter(filter)).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFound("user not found")
		}
		return nil, err
	}
	return &user, nil
}

func (r *MongoUserRepository) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoUserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": entity.NormalizeEmail(email)})
}

// UpdateUser applies a field map and returns the updated record.
func (r *MongoUserRepository) UpdateUser(ctx context.Context, id string, updates map[string]interface{}) (*entity.User, error) {
	set := bson.M{"updated_at": time.Now()}
	for k, v := range updates {
		set[k] = v
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, apperror.NotFound("user not found")
	}
	return r.GetUserByID(ctx, id)
}

func (r *MongoUserRepository) AddWorkspaceRef(ctx context.Context, userID, workspaceID string) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"workspaces": entity.WorkspaceRef{WorkspaceID: workspaceID}}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperror.NotFound("user not found")
	}
	return nil
}

func (r *MongoUserRepository) UpdatePassword(ctx context.Context, id, passwordHash string, changedAt time.Time) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$set": bson.M{
				"password_hash":       passwordHash,
				"password_changed_at": changedAt,
				"updated_at":          time.Now(),
			},
			"$unset": bson.M{
				"password_reset_token":   "",
				"password_reset_expires": "",
			},
		},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperror.NotFound("user not found")
	}
	return nil
}

func (r *MongoUserRepository) SetVerificationCode(ctx context.Context, id, hashedCode string, expires time.Time) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"email_verification_code":    hashedCode,
			"email_verification_expires": expires,
		}},
	)
	return err
}

func (r *MongoUserRepository) GetByVerificationCode(ctx context.Context, email, hashedCode string, now time.Time) (*entity.User, error) {
	return r.findOne(ctx, bson.M{
		"email":                      entity.NormalizeEmail(email),
		"email_verification_code":    hashedCode,
		"email_verification_expires": bson.M{"$gt": now},
	})
}

func (r *MongoUserRepository) MarkEmailVerified(ctx context.Context, id string) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$set":   bson.M{"is_email_verified": true},
			"$unset": bson.M{"email_verification_code": "", "email_verification_expires": ""},
		},
	)
	return err
}

func (r *MongoUserRepository) SetPasswordResetToken(ctx context.Context, id, hashedToken string, expires time.Time) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"password_reset_token":   hashedToken,
			"password_reset_expires": expires,
		}},
	)
	return err
}

func (r *MongoUserRepository) GetByPasswordResetToken(ctx context.Context, hashedToken string, now time.Time) (*entity.User, error) {
	return r.findOne(ctx, bson.M{
		"password_reset_token":   hashedToken,
		"password_reset_expires": bson.M{"$gt": now},
	})
}

func (r *MongoUserRepository) ClearPasswordResetToken(ctx context.Context, id string) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$unset": bson.M{"password_reset_token": "", "password_reset_expires": ""}},
	)
	return err
}

// DeactivateUser soft-deletes: the record stays but drops out of lookups.
func (r *MongoUserRepository) DeactivateUser(ctx context.Context, id string) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"active": false}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperror.NotFound("user not found")
	}
	return nil
}
