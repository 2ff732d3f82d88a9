package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tag labels posts; posts and tags are many-to-many via post_tags.
// Uniqueness is case-insensitive: NameKey holds the lowercased name
// under a unique index (same scheme as Category).
type Tag struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	NameKey string `gorm:"uniqueIndex;not null" json:"-"`
	// PostCount is not persisted; computed at query time.
	PostCount int64  `gorm:"->" json:"postCount"`
	Posts     []Post `gorm:"many2many:post_tags" json:"-"`
}

// BeforeSave keeps the normalized name column in sync with Name.
func (t *Tag) BeforeSave(_ *gorm.DB) error {
	t.NameKey = strings.ToLower(t.Name)
	return nil
}

// BeforeCreate assigns a UUID primary key when one is not set.
func (t *Tag) BeforeCreate(_ *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
