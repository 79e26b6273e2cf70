package complaint

import (
	"context"
	"errors"

	"github.com/seva-mitra/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoStore struct{ col *mongo.Collection }

// NewMongoStore returns a Store backed by the complaints collection.
func NewMongoStore(db *mongo.Database) Store {
	return &mongoStore{col: db.Collection(models.ComplaintModel{}.CollectionName())}
}

func (s *mongoStore) Insert(ctx context.Context, m *models.ComplaintModel) error {
	_, err := s.col.InsertOne(ctx, m)
	return err
}

func (s *mongoStore) FindAll(ctx context.Context) ([]models.ComplaintModel, error) {
	cur, err := s.col.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	items := []models.ComplaintModel{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *mongoStore) FindByPhone(ctx context.Context, phoneNumber string) ([]models.ComplaintModel, error) {
	cur, err := s.col.Find(ctx, bson.M{"phoneNumber": phoneNumber})
	if err != nil {
		return nil, err
	}
	items := []models.ComplaintModel{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *mongoStore) UpdateStatus(ctx context.Context, id string, status models.ComplaintStatus) (*models.ComplaintModel, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errInvalidID
	}

	var updated models.ComplaintModel
	err = s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *mongoStore) CountByStatus(ctx context.Context) (map[models.ComplaintStatus]int64, error) {
	cur, err := s.col.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
	})
	if err != nil {
		return nil, err
	}
	var rows []struct {
		Status models.ComplaintStatus `bson:"_id"`
		Count  int64                  `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	counts := make(map[models.ComplaintStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}
