package models

import (
	"umrahdesk/src/types"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type Hotel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Slug          string    `gorm:"uniqueIndex" json:"slug"`
	City          string    `gorm:"index" json:"city"`
	Class         string    `json:"class"`
	DistanceM     int64     `json:"distance_m"`
	PricePerNight int64     `json:"price_per_night"`

	types.Timestamps
}

func (h *Hotel) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	if h.Slug == "" {
		h.Slug = slug.Make(h.Name)
	}
	return nil
}
