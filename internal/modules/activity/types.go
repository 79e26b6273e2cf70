package activity

import (
	"errors"
	"time"
)

type CreateActivityDTO struct {
	Title       string     `json:"title"       form:"title"       binding:"required"`
	Description string     `json:"description" form:"description" binding:"required"`
	Date        *time.Time `json:"date"        form:"date"`
}

type UpdateActivityDTO struct {
	Title       *string    `json:"title"       form:"title"`
	Description *string    `json:"description" form:"description"`
	Date        *time.Time `json:"date"        form:"date"`
}

var (
	errInvalidID = errors.New("invalid activity id")
	errNotFound  = errors.New("activity not found")
)
