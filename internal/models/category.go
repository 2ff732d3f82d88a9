package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups posts under a single editorial heading.
// NameKey is the lowercased name backed by a unique index, so two
// concurrent creates with the same name in different case cannot both
// land; the application-level duplicate scan exists only to produce a
// friendly 409 before the insert.
type Category struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	NameKey string `gorm:"uniqueIndex;not null" json:"-"`
	// PostCount is not persisted; computed at query time.
	PostCount int64  `gorm:"->" json:"postCount"`
	Posts     []Post `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeSave keeps the normalized name column in sync with Name.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.NameKey = strings.ToLower(c.Name)
	return nil
}

// BeforeCreate assigns a UUID primary key when one is not set.
func (c *Category) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
