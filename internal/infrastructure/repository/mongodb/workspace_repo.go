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

type MongoWorkspaceRepository struct {
	collection     *mongo.Collection
	userCollection *mongo.Collection
}

var _ contract.IWorkspaceRepository = (*MongoWorkspaceRepository)(nil)

// NewMongoWorkspaceRepository creates the workspace repository. The user
// collection is needed for the leaderboard $lookup.
func NewMongoWorkspaceRepository(collection, userCollection *mongo.Collection) *MongoWorkspaceRepository {
	return &MongoWorkspaceRepository{collection: collection, userCollection: userCollection}
}

func (r *MongoWorkspaceRepository) CreateWorkspace(ctx context.Context, workspace *entity.Workspace) error {
	_, err := r.collection.InsertOne(ctx, workspace)
	return err
}

func (r *MongoWorkspaceRepository) GetWorkspaceByID(ctx context.Context, id string) (*entity.Workspace, error) {
	var workspace entity.Workspace
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&workspace)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFound("workspace not found")
		}
		return nil, err
	}
	return &workspace, nil
}

func (r *MongoWorkspaceRepository) GetWorkspacesByMember(ctx context.Context, userID string) ([]entity.Workspace, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"users.user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var workspaces []entity.Workspace
	if err := cursor.All(ctx, &workspaces); err != nil {
		return nil, err
	}
	return workspaces, nil
}

func (r *MongoWorkspaceRepository) GetAdminWorkspaceIDs(ctx context.Context, userID string) ([]string, error) {
	filter := bson.M{"users": bson.M{"$elemMatch": bson.M{"user_id": userID, "role": entity.WorkspaceRoleAdmin}}}
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID string `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.ID)
	}
	return ids, nil
}

func (r *MongoWorkspaceRepository) DeleteWorkspace(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperror.NotFound("workspace not found")
	}
	return nil
}

func (r *MongoWorkspaceRepository) AddMember(ctx context.Context, workspaceID string, member entity.WorkspaceUser) error {
	// Guard against duplicate membership at the update filter level: the
	// push only happens when no entry for the user exists yet.
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": workspaceID, "users.user_id": bson.M{"$ne": member.UserID}},
		bson.M{"$push": bson.M{"users": member}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		exists, err := r.collection.CountDocuments(ctx, bson.M{"_id": workspaceID})
		if err != nil {
			return err
		}
		if exists == 0 {
			return apperror.NotFound("workspace not found")
		}
		return apperror.Conflict("user already exists in the workspace")
	}
	return nil
}

func (r *MongoWorkspaceRepository) FindByMemberToken(ctx context.Context, verificationToken string) (*entity.Workspace, *entity.WorkspaceUser, error) {
	var workspace entity.Workspace
	err := r.collection.FindOne(ctx, bson.M{
		"users.verification_token":         verificationToken,
		"users.verification_token_expires": bson.M{"$gt": time.Now()},
	}).Decode(&workspace)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil, apperror.Validation("invalid or expired invitation token")
		}
		return nil, nil, err
	}
	for i := range workspace.Users {
		if workspace.Users[i].VerificationToken == verificationToken {
			return &workspace, &workspace.Users[i], nil
		}
	}
	return nil, nil, apperror.Validation("invalid or expired invitation token")
}

func (r *MongoWorkspaceRepository) VerifyMember(ctx context.Context, workspaceID, verificationToken, userID string) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": workspaceID, "users.verification_token": verificationToken},
		bson.M{
			"$set": bson.M{
				"users.$.is_verified": true,
				"users.$.user_id":     userID,
			},
			"$unset": bson.M{
				"users.$.verification_token":         "",
				"users.$.verification_token_expires": "",
			},
		},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperror.NotFound("failed to verify user in workspace")
	}
	return nil
}

func (r *MongoWorkspaceRepository) AddPosition(ctx context.Context, workspaceID string, position entity.Position) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": workspaceID},
		bson.M{"$push": bson.M{"positions": position}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperror.NotFound("workspace not found")
	}
	return nil
}

func (r *MongoWorkspaceRepository) AppendTask(ctx context.Context, workspaceID string, task entity.Task) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": workspaceID},
		bson.M{"$push": bson.M{"backlog": task}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperror.NotFound("workspace not found")
	}
	return nil
}

func (r *MongoWorkspaceRepository) UpdateTask(ctx context.Context, workspaceID, taskID string, patch contract.TaskPatch) error {
	set := bson.M{"backlog.$[elem].updated_at": time.Now()}
	if patch.Title != nil {
		set["backlog.$[elem].title"] = *patch.Title
	}
	if patch.Description != nil {
		set["backlog.$[elem].description"] = *patch.Description
	}
	if patch.Category != nil {
		set["backlog.$[elem].category"] = *patch.Category
	}
	if patch.StarsEarned != nil {
		set["backlog.$[elem].stars_earned"] = *patch.StarsEarned
	}
	if patch.IsGlobal != nil {
		set["backlog.$[elem].is_global"] = *patch.IsGlobal
	}
	if patch.Link != nil {
		set["backlog.$[elem].link"] = *patch.Link
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": workspaceID},
		bson.M{"$set": set},
		options.Update().SetArrayFilters(options.ArrayFilters{
			Filters: []interface{}{bson.M{"elem._id": taskID}},
		}),
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperror.NotFound("workspace or task not found")
	}
	return nil
}

func (r *MongoWorkspaceRepository) UpdateTaskTargets(ctx context.Context, workspaceID, taskID string, addPositions, removePositions, addPlanets, removePlanets []string) error {
	// $pull and $addToSet cannot touch the same path in one command, so
	// removals and additions run as two updates against the same task.
	if len(removePositions) > 0 || len(removePlanets) > 0 {
		pull := bson.M{}
		if len(removePositions) > 0 {
			pull["backlog.$.positions"] = bson.M{"$in": removePositions}
		}
		if len(removePlanets) > 0 {
			pull["backlog.$.planets"] = bson.M{"$in": removePlanets}
		}
		if _, err := r.collection.UpdateOne(ctx,
			bson.M{"_id": workspaceID, "backlog._id": taskID},
			bson.M{"$pull": pull},
		); err != nil {
			return err
		}
	}
	if len(addPositions) > 0 || len(addPlanets) > 0 {
		add := bson.M{}
		if len(addPositions) > 0 {
			add["backlog.$.positions"] = bson.M{"$each": addPositions}
		}
		if len(addPlanets) > 0 {
			add["backlog.$.planets"] = bson.M{"$each": addPlanets}
		}
		if _, err := r.collection.UpdateOne(ctx,
			bson.M{"_id": workspaceID, "backlog._id": taskID},
			bson.M{"$addToSet": add},
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *MongoWorkspaceRepository) PullTask(ctx context.Context, workspaceID, taskID string) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": workspaceID},
		bson.M{"$pull": bson.M{"backlog": bson.M{"_id": taskID}}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperror.NotFound("workspace not found")
	}
	return nil
}

// memberFilter builds the arrayFilters element condition selecting which
// embedded members a quest operation touches.
func memberFilter(op contract.QuestOp) bson.M {
	elem := bson.M{"u.role": entity.WorkspaceRoleMentee}
	target := op.Target
	if target.UserID != nil {
		elem["u.user_id"] = *target.UserID
	}
	if target.ExcludeTargets {
		elem["u.position"] = bson.M{"$nin": target.AllPositions}
		elem["u.planet"] = bson.M{"$nin": target.AllPlanets}
	} else {
		if target.Position != nil {
			elem["u.position"] = *target.Position
		}
		if target.Planet != nil {
			elem["u.planet"] = *target.Planet
		}
	}
	if target.HoldingTask != nil {
		if *target.HoldingTask {
			elem["u.quest.tasks"] = op.TaskID
		} else {
			elem["u.quest.tasks"] = bson.M{"$ne": op.TaskID}
		}
	}
	return elem
}

// BulkQuestUpdate executes a fan-out op set as one unordered bulk write.
// Every op uses arrayFilters, so each command updates all matching
// embedded members, not just the first.
func (r *MongoWorkspaceRepository) BulkQuestUpdate(ctx context.Context, workspaceID string, ops []contract.QuestOp) error {
	if len(ops) == 0 {
		return nil
	}

	models := make([]mongo.WriteModel, 0, len(ops))
	for _, op := range ops {
		elem := memberFilter(op)
		var update bson.M
		switch op.Action {
		case contract.QuestOpAdd:
			update = bson.M{"$push": bson.M{"users.$[u].quest": op.Entry}}
		case contract.QuestOpAddUnique:
			// Only members not already holding the task match.
			elem["u.quest.tasks"] = bson.M{"$ne": op.TaskID}
			update = bson.M{"$push": bson.M{"users.$[u].quest": op.Entry}}
		case contract.QuestOpRemove:
			update = bson.M{"$pull": bson.M{"users.$[u].quest": bson.M{"tasks": op.TaskID}}}
		default:
			continue
		}
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": workspaceID}).
			SetUpdate(update).
			SetArrayFilters(options.ArrayFilters{Filters: []interface{}{elem}}))
	}

	_, err := r.collection.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return apperror.Wrap(apperror.KindInternal, "bulk quest update failed", err)
	}
	return nil
}

func (r *MongoWorkspaceRepository) AddQuestEntries(ctx context.Context, workspaceID, userID string, entries []entity.UserTask) error {
	if len(entries) == 0 {
		return nil
	}
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": workspaceID, "users.user_id": userID},
		bson.M{"$push": bson.M{"users.$.quest": bson.M{"$each": entries}}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperror.NotFound("user not found in workspace")
	}
	return nil
}

func (r *MongoWorkspaceRepository) SetQuestStatus(ctx context.Context, workspaceID, userID, questID string, status entity.TaskStatus) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": workspaceID, "users.user_id": userID},
		bson.M{"$set": bson.M{
			"users.$[user].quest.$[task].status":     status,
			"users.$[user].quest.$[task].updated_at": time.Now(),
		}},
		options.Update().SetArrayFilters(options.ArrayFilters{
			Filters: []interface{}{
				bson.M{"user.user_id": userID},
				bson.M{"task._id": questID},
			},
		}),
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperror.NotFound("workspace or user not found")
	}
	if result.ModifiedCount == 0 {
		// Status already equal counts as modified=0 too; distinguish a
		// missing quest entry from a no-op by checking existence.
		exists, err := r.collection.CountDocuments(ctx, bson.M{
			"_id":   workspaceID,
			"users": bson.M{"$elemMatch": bson.M{"user_id": userID, "quest._id": questID}},
		})
		if err != nil {
			return err
		}
		if exists == 0 {
			return apperror.NotFound("task not found in user quest")
		}
	}
	return nil
}

func (r *MongoWorkspaceRepository) AddQuestComment(ctx context.Context, workspaceID, userID, questID string, comment entity.Comment) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": workspaceID, "users.user_id": userID},
		bson.M{"$push": bson.M{"users.$[user].quest.$[task].comments": comment}},
		options.Update().SetArrayFilters(options.ArrayFilters{
			Filters: []interface{}{
				bson.M{"user.user_id": userID},
				bson.M{"task._id": questID},
			},
		}),
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperror.NotFound("workspace or user not found")
	}
	if result.ModifiedCount == 0 {
		return apperror.NotFound("task not found in user quest")
	}
	return nil
}

func (r *MongoWorkspaceRepository) IncrementStars(ctx context.Context, workspaceID, userID string, stars int) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": workspaceID, "users.user_id": userID},
		bson.M{"$inc": bson.M{"users.$.stars": stars}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperror.NotFound("failed to update user stars")
	}
	return nil
}

// Leaderboard ranks mentees of a workspace by cumulative stars, joining
// the user collection for display names.
func (r *MongoWorkspaceRepository) Leaderboard(ctx context.Context, workspaceID string) ([]entity.LeaderboardEntry, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": workspaceID}}},
		{{Key: "$unwind", Value: "$users"}},
		{{Key: "$match", Value: bson.M{"users.role": entity.WorkspaceRoleMentee}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         r.userCollection.Name(),
			"localField":   "users.user_id",
			"foreignField": "_id",
			"as":           "userDetails",
		}}},
		{{Key: "$unwind", Value: "$userDetails"}},
		{{Key: "$project", Value: bson.M{
			"_id":      0,
			"user_id":  "$users.user_id",
			"name":     bson.M{"$concat": bson.A{"$userDetails.first_name", " ", "$userDetails.last_name"}},
			"position": "$users.position",
			"planet":   "$users.planet",
			"stars":    "$users.stars",
		}}},
		{{Key: "$sort", Value: bson.M{"stars": -1}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []entity.LeaderboardEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
