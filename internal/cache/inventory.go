package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	PostKeyPrefix = "post:%s"
	categoriesKey = "categories"
	tagsKey       = "tags"
)

const (
	PostTTL = 30 * time.Minute
	ListTTL = 5 * time.Minute
)

func PostKey(postID string) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func CategoriesKey() string {
	return categoriesKey
}

func TagsKey() string {
	return tagsKey
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidatePost(ctx context.Context, postID string) {
	Invalidate(ctx, PostKey(postID))
}

func InvalidateCategories(ctx context.Context) {
	Invalidate(ctx, categoriesKey)
}

func InvalidateTags(ctx context.Context) {
	Invalidate(ctx, tagsKey)
}
