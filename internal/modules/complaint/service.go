package complaint

import (
	"context"
	"time"

	"github.com/seva-mitra/core/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is the persistence surface the service needs. FindAll returns
// complaints newest first; FindByPhone returns them in natural storage
// order. UpdateStatus returns (nil, nil) when no complaint matches the id.
type Store interface {
	Insert(ctx context.Context, m *models.ComplaintModel) error
	FindAll(ctx context.Context) ([]models.ComplaintModel, error)
	FindByPhone(ctx context.Context, phoneNumber string) ([]models.ComplaintModel, error)
	UpdateStatus(ctx context.Context, id string, status models.ComplaintStatus) (*models.ComplaintModel, error)
	CountByStatus(ctx context.Context) (map[models.ComplaintStatus]int64, error)
}

type Service struct{ store Store }

func NewService(store Store) *Service { return &Service{store: store} }

// Create persists a new complaint, defaulting status to pending.
func (s *Service) Create(ctx context.Context, dto *CreateComplaintDTO) (*models.ComplaintModel, error) {
	status := dto.Status
	if status == "" {
		status = models.StatusPending
	}
	if !status.Valid() {
		return nil, errInvalidStatus
	}

	m := models.ComplaintModel{
		ID:          primitive.NewObjectID(),
		PhoneNumber: dto.PhoneNumber,
		Category:    dto.Category,
		Description: dto.Description,
		Status:      status,
		CreatedAt:   time.Now(),
	}
	if err := s.store.Insert(ctx, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns all complaints, newest first.
func (s *Service) List(ctx context.Context) ([]models.ComplaintModel, error) {
	return s.store.FindAll(ctx)
}

// ListByPhone returns complaints whose phoneNumber matches exactly.
func (s *Service) ListByPhone(ctx context.Context, phoneNumber string) ([]models.ComplaintModel, error) {
	return s.store.FindByPhone(ctx, phoneNumber)
}

// UpdateStatus replaces the status of the complaint with the given id and
// returns the updated record, or (nil, nil) when the id does not exist.
func (s *Service) UpdateStatus(ctx context.Context, id string, status models.ComplaintStatus) (*models.ComplaintModel, error) {
	if !status.Valid() {
		return nil, errInvalidStatus
	}
	return s.store.UpdateStatus(ctx, id, status)
}

// StateCount returns counts per status, with every enum value present.
func (s *Service) StateCount(ctx context.Context) (map[string]int64, error) {
	byStatus, err := s.store.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	counts := map[string]int64{
		string(models.StatusPending):    0,
		string(models.StatusInProgress): 0,
		string(models.StatusCompleted):  0,
	}
	for status, n := range byStatus {
		if status.Valid() {
			counts[string(status)] = n
		}
	}
	return counts, nil
}
