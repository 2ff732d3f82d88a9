// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/validation"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

var categoryNames = []string{
	"Technology", "Programming", "DevOps", "Web Development", "Databases",
	"Career", "Productivity", "Open Source", "Security", "Cloud",
}

var tagNames = []string{
	"go", "javascript", "typescript", "react", "postgres", "redis",
	"docker", "kubernetes", "testing", "architecture", "performance",
	"tutorial", "opinion", "beginners",
}

// Seed populates the database with demo users, a taxonomy and posts with
// threaded comments.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding database with %d users and %d posts...", opts.NumUsers, opts.NumPosts)
	gofakeit.Seed(time.Now().UnixNano())

	if opts.ShouldClean {
		if err := ClearAll(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	users, err := seedUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("seeding users: %w", err)
	}

	categories, err := seedCategories(db)
	if err != nil {
		return fmt.Errorf("seeding categories: %w", err)
	}

	tags, err := seedTags(db)
	if err != nil {
		return fmt.Errorf("seeding tags: %w", err)
	}

	posts, err := seedPosts(db, users, categories, tags, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("seeding posts: %w", err)
	}

	if err := seedComments(db, users, posts); err != nil {
		return fmt.Errorf("seeding comments: %w", err)
	}

	log.Printf("Seeding complete: %d users, %d posts", len(users), len(posts))
	return nil
}

// ClearAll removes all seeded data in dependency order.
func ClearAll(db *gorm.DB) error {
	if err := db.Exec("DELETE FROM comments").Error; err != nil {
		return err
	}
	if err := db.Exec("DELETE FROM post_tags").Error; err != nil {
		return err
	}
	for _, table := range []string{"posts", "tags", "categories", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedUsers(db *gorm.DB, n int) ([]models.User, error) {
	// One well-known password for every demo account.
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		user := models.User{
			Name:     gofakeit.Name(),
			Email:    fmt.Sprintf("user%d@%s", i, gofakeit.DomainName()),
			Password: string(hash),
			Role:     models.RoleUser,
		}
		if i == 0 {
			user.Email = "admin@inkwell.dev"
			user.Role = models.RoleAdmin
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func seedCategories(db *gorm.DB) ([]models.Category, error) {
	categories := make([]models.Category, 0, len(categoryNames))
	for _, name := range categoryNames {
		category := models.Category{Name: name}
		if err := db.Create(&category).Error; err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}

func seedTags(db *gorm.DB) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(tagNames))
	for _, name := range tagNames {
		tag := models.Tag{Name: name}
		if err := db.Create(&tag).Error; err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func seedPosts(db *gorm.DB, users []models.User, categories []models.Category, tags []models.Tag, n int) ([]models.Post, error) {
	posts := make([]models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[rand.Intn(len(users))]
		title := fmt.Sprintf("%s %d", gofakeit.Sentence(4), i)

		post := models.Post{
			Title:     title,
			Slug:      validation.Slugify(title),
			Content:   gofakeit.Paragraph(3, 5, 12, "\n\n"),
			Published: rand.Intn(10) > 1, // roughly 80% published
			AuthorID:  author.ID,
		}
		if rand.Intn(4) > 0 {
			post.ThumbnailURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/400", gofakeit.UUID())
		}
		if rand.Intn(5) > 0 {
			category := categories[rand.Intn(len(categories))]
			post.CategoryID = &category.ID
		}

		// realistic created_at spread over the last 90 days
		post.CreatedAt = time.Now().Add(-time.Duration(rand.Intn(90*24)) * time.Hour)

		for _, idx := range rand.Perm(len(tags))[:rand.Intn(4)] {
			post.Tags = append(post.Tags, tags[idx])
		}

		if err := db.Create(&post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func seedComments(db *gorm.DB, users []models.User, posts []models.Post) error {
	for _, post := range posts {
		numComments := rand.Intn(6)
		var topLevel []models.Comment
		for i := 0; i < numComments; i++ {
			comment := models.Comment{
				Content:  gofakeit.Sentence(rand.Intn(15) + 3),
				AuthorID: users[rand.Intn(len(users))].ID,
				PostID:   post.ID,
			}
			if err := db.Create(&comment).Error; err != nil {
				return err
			}
			topLevel = append(topLevel, comment)

			// occasional reply thread
			if rand.Intn(3) == 0 {
				reply := models.Comment{
					Content:  gofakeit.Sentence(rand.Intn(10) + 3),
					AuthorID: users[rand.Intn(len(users))].ID,
					PostID:   post.ID,
					ParentID: &topLevel[len(topLevel)-1].ID,
				}
				if err := db.Create(&reply).Error; err != nil {
					return err
				}
			}
		}
	}
	return nil
}
