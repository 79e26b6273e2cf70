package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ComplaintStatus represents the processing state of a complaint.
type ComplaintStatus string

const (
	StatusPending    ComplaintStatus = "pending"
	StatusInProgress ComplaintStatus = "in-progress"
	StatusCompleted  ComplaintStatus = "completed"
)

// Valid reports whether s is a member of the status enum.
func (s ComplaintStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// ComplaintModel stores citizen-submitted complaints keyed by phone number.
// There is no delete endpoint; status is the only field mutable after creation.
type ComplaintModel struct {
	ID          primitive.ObjectID `json:"id"          bson:"_id,omitempty"`
	PhoneNumber string             `json:"phoneNumber" bson:"phoneNumber"`
	Category    string             `json:"category"    bson:"category"`
	Description string             `json:"description" bson:"description"`
	Status      ComplaintStatus    `json:"status"      bson:"status"`
	CreatedAt   time.Time          `json:"createdAt"   bson:"createdAt"`
}

func (ComplaintModel) CollectionName() string { return "complaints" }
