package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post represents a blog post.
type Post struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Slug         string    `gorm:"uniqueIndex;not null" json:"slug"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	Published    bool      `gorm:"not null;default:true" json:"published"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	AuthorID     string    `gorm:"type:uuid;not null;index" json:"authorId"`
	Author       *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CategoryID   *string   `gorm:"type:uuid;index" json:"categoryId,omitempty"`
	Category     *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Tags         []Tag     `gorm:"many2many:post_tags" json:"tags,omitempty"`
	Comments     []Comment `gorm:"foreignKey:PostID" json:"comments,omitempty"`

	// Hashnode linkage, populated once the post is mirrored externally.
	HashnodeID          string `json:"hashnodeId,omitempty"`
	HashnodeURL         string `json:"hashnodeUrl,omitempty"`
	PublishedOnHashnode bool   `gorm:"not null;default:false" json:"publishedOnHashnode"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns a UUID primary key when one is not set.
func (p *Post) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
