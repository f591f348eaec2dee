// Package models implements all resources that are saved to the database.
package models

import (
	"time"

	"github.com/pocketledger/backend/internal/objectid"
	"gorm.io/gorm"
)

// DefaultModel is the base model for all models.
type DefaultModel struct {
	ID        objectid.ObjectID `json:"id" gorm:"primaryKey" example:"66d9a6f0b7f8a91b0c3e4d5a"` // ID of the resource
	CreatedAt time.Time         `json:"createdAt" example:"2022-04-02T19:28:44.491514Z"`        // Time the resource was created
	UpdatedAt time.Time         `json:"updatedAt" example:"2022-04-17T20:14:01.048145Z"`        // Last time the resource was updated
}

// BeforeCreate generates the ID for the resource.
func (m *DefaultModel) BeforeCreate(_ *gorm.DB) error {
	m.ID = objectid.New()
	return nil
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (m *DefaultModel) AfterFind(_ *gorm.DB) error {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)

	return nil
}
