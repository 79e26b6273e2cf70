package complaint

import (
	"errors"

	"github.com/seva-mitra/core/internal/models"
)

type CreateComplaintDTO struct {
	PhoneNumber string                 `json:"phoneNumber" form:"phoneNumber" binding:"required"`
	Category    string                 `json:"category"    form:"category"    binding:"required"`
	Description string                 `json:"description" form:"description" binding:"required"`
	Status      models.ComplaintStatus `json:"status"      form:"status"`
}

type UpdateStatusDTO struct {
	Status models.ComplaintStatus `json:"status" form:"status" binding:"required"`
}

var (
	errInvalidStatus = errors.New("status must be one of pending, in-progress, completed")
	errInvalidID     = errors.New("invalid complaint id")
)
