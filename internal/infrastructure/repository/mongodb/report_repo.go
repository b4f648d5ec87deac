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

type MongoDailyReportRepository struct {
	collection *mongo.Collection
}

var _ contract.IDailyReportRepository = (*MongoDailyReportRepository)(nil)

func NewMongoDailyReportRepository(collection *mongo.Collection) *MongoDailyReportRepository {
	return &MongoDailyReportRepository{collection: collection}
}

// dayRange returns the UTC day window containing t.
func dayRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}

func (r *MongoDailyReportRepository) CreateDailyReport(ctx context.Context, report *entity.DailyReport) error {
	_, err := r.collection.InsertOne(ctx, report)
	return err
}

func (r *MongoDailyReportRepository) GetDailyReportByID(ctx context.Context, id string) (*entity.DailyReport, error) {
	var report entity.DailyReport
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&report)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFound("daily report not found")
		}
		return nil, err
	}
	return &report, nil
}

func (r *MongoDailyReportRepository) ExistsForDate(ctx context.Context, userID string, date time.Time) (bool, error) {
	start, end := dayRange(date)
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": start, "$lt": end},
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *MongoDailyReportRepository) UpdateDailyReport(ctx context.Context, report *entity.DailyReport) error {
	report.UpdatedAt = time.Now()
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": report.ID}, report)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperror.NotFound("daily report not found")
	}
	return nil
}

func (r *MongoDailyReportRepository) SetEndOfDay(ctx context.Context, id string, mood int, actual []entity.Activity) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"mood.end_of_day": mood,
			"actual_activity": actual,
			"updated_at":      time.Now(),
		}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperror.NotFound("daily report not found")
	}
	return nil
}

func (r *MongoDailyReportRepository) ListByUser(ctx context.Context, userID string) ([]entity.DailyReport, error) {
	cursor, err := r.collection.Find(ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.M{"date": -1}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reports []entity.DailyReport
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *MongoDailyReportRepository) CountSince(ctx context.Context, userID string, since time.Time) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": since},
	})
	return int(count), err
}

type MongoWeeklyReportRepository struct {
	collection *mongo.Collection
}

var _ contract.IWeeklyReportRepository = (*MongoWeeklyReportRepository)(nil)

func NewMongoWeeklyReportRepository(collection *mongo.Collection) *MongoWeeklyReportRepository {
	return &MongoWeeklyReportRepository{collection: collection}
}

func (r *MongoWeeklyReportRepository) CreateWeeklyReport(ctx context.Context, report *entity.WeeklyReport) error {
	_, err := r.collection.InsertOne(ctx, report)
	return err
}

func (r *MongoWeeklyReportRepository) ExistsForWeek(ctx context.Context, userID string, year, week int) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"user_id": userID,
		"year":    year,
		"week":    week,
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *MongoWeeklyReportRepository) ListByUser(ctx context.Context, userID string) ([]entity.WeeklyReport, error) {
	cursor, err := r.collection.Find(ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "year", Value: -1}, {Key: "week", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reports []entity.WeeklyReport
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}
