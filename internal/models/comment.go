package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment is a reader comment on a post. ParentID, when set, references
// another comment on the same post (threaded replies).
type Comment struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	AuthorID  string    `gorm:"type:uuid;not null;index" json:"authorId"`
	Author    *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	PostID    string    `gorm:"type:uuid;not null;index" json:"postId"`
	ParentID  *string   `gorm:"type:uuid;index" json:"parentId,omitempty"`
	Replies   []Comment `gorm:"foreignKey:ParentID" json:"replies,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// BeforeCreate assigns a UUID primary key when one is not set.
func (c *Comment) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
