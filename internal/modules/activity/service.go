package activity

import (
	"context"
	"time"

	"github.com/seva-mitra/core/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is the persistence surface the service needs. FindAll returns
// activities most recent date first. Update returns errNotFound when no
// activity matches the id; Delete succeeds whether or not a record existed.
type Store interface {
	Insert(ctx context.Context, m *models.ActivityModel) error
	FindAll(ctx context.Context) ([]models.ActivityModel, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.ActivityModel, error)
	Delete(ctx context.Context, id string) error
}

type Service struct{ store Store }

func NewService(store Store) *Service { return &Service{store: store} }

// Create persists a new activity, defaulting date to creation time.
func (s *Service) Create(ctx context.Context, dto *CreateActivityDTO) (*models.ActivityModel, error) {
	date := time.Now()
	if dto.Date != nil {
		date = *dto.Date
	}
	m := models.ActivityModel{
		ID:          primitive.NewObjectID(),
		Title:       dto.Title,
		Description: dto.Description,
		Date:        date,
	}
	if err := s.store.Insert(ctx, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns all activities, most recent date first.
func (s *Service) List(ctx context.Context) ([]models.ActivityModel, error) {
	return s.store.FindAll(ctx)
}

// Update replaces the provided fields on the existing record and returns
// the updated record.
func (s *Service) Update(ctx context.Context, id string, dto *UpdateActivityDTO) (*models.ActivityModel, error) {
	fields := map[string]interface{}{}
	if dto.Title != nil {
		fields["title"] = *dto.Title
	}
	if dto.Description != nil {
		fields["description"] = *dto.Description
	}
	if dto.Date != nil {
		fields["date"] = *dto.Date
	}
	return s.store.Update(ctx, id, fields)
}

// Delete removes the matching record if present. No existence signal.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
