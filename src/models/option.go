package models

import (
	"umrahdesk/src/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FormOption is one selectable entry of a booking-form dropdown
// (bed types, hotel classes, add-on services and the like).
type FormOption struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Group string    `gorm:"column:option_group;index;not null" json:"group"`
	Label string    `gorm:"not null" json:"label"`
	Value string    `gorm:"not null" json:"value"`
	Sort  int64     `json:"sort"`

	types.Timestamps
}

func (o *FormOption) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
