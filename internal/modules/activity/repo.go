package activity

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

// NewMongoStore returns a Store backed by the activities collection.
func NewMongoStore(db *mongo.Database) Store {
	return &mongoStore{col: db.Collection(models.ActivityModel{}.CollectionName())}
}

func (s *mongoStore) Insert(ctx context.Context, m *models.ActivityModel) error {
	_, err := s.col.InsertOne(ctx, m)
	return err
}

func (s *mongoStore) FindAll(ctx context.Context) ([]models.ActivityModel, error) {
	cur, err := s.col.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	items := []models.ActivityModel{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *mongoStore) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.ActivityModel, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errInvalidID
	}

	var updated models.ActivityModel
	if len(fields) == 0 {
		// $set rejects an empty document; an empty body is a no-op read.
		err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&updated)
	} else {
		err = s.col.FindOneAndUpdate(ctx,
			bson.M{"_id": oid},
			bson.M{"$set": fields},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&updated)
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *mongoStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errInvalidID
	}
	_, err = s.col.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
