package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	PostKeyPrefix = "post:%s"

	PublishedPostsKey = "posts:published"
	CategoriesListKey = "categories:list"
	TagsListKey       = "tags:list"
)

const (
	PostTTL = 30 * time.Minute
	ListTTL = 2 * time.Minute
)

func PostKey(postID uuid.UUID) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidatePost drops the single-post entry and the published listing;
// any write to a post can change what the listing returns.
func InvalidatePost(ctx context.Context, postID uuid.UUID) {
	Invalidate(ctx, PostKey(postID))
	Invalidate(ctx, PublishedPostsKey)
}

// InvalidateCategories drops the category listing; post writes also call
// this because post_count is computed from referencing posts.
func InvalidateCategories(ctx context.Context) {
	Invalidate(ctx, CategoriesListKey)
}

func InvalidateTags(ctx context.Context) {
	Invalidate(ctx, TagsListKey)
}
