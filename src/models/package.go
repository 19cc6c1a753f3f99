package models

import (
	"time"

	"umrahdesk/src/types"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// Package is a pre-built Umrah itinerary offered on the site.
type Package struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string           `gorm:"not null" json:"name"`
	Slug         string           `gorm:"uniqueIndex" json:"slug"`
	Days         int64            `json:"days"`
	Nights       int64            `json:"nights"`
	MakkahHotel  string           `json:"makkah_hotel"`
	MadinahHotel string           `json:"madinah_hotel"`
	Price        int64            `json:"price"`
	Inclusions   types.JSONBArray `gorm:"type:jsonb" json:"inclusions"`
	DepartsAt    *time.Time       `json:"departs_at,omitempty"`

	types.Timestamps
}

func (p *Package) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Slug == "" {
		p.Slug = slug.Make(p.Name)
	}
	return nil
}
