package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityModel stores community event/announcement records.
type ActivityModel struct {
	ID          primitive.ObjectID `json:"id"          bson:"_id,omitempty"`
	Title       string             `json:"title"       bson:"title"`
	Description string             `json:"description" bson:"description"`
	Date        time.Time          `json:"date"        bson:"date"`
}

func (ActivityModel) CollectionName() string { return "activities" }
