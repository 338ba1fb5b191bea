package repository

import (
	"context"

	"aether/internal/model"
)

// Repository is the interface for scheduled post persistence.
type Repository interface {
	CreatePost(ctx context.Context, opt CreatePostOptions) (model.ScheduledPost, error)
	GetPost(ctx context.Context, id string) (model.ScheduledPost, error)
	ListPosts(ctx context.Context, opt ListPostsOptions) ([]model.ScheduledPost, error)
	UpdatePost(ctx context.Context, post model.ScheduledPost) (model.ScheduledPost, error)
	DeletePost(ctx context.Context, id string) error
}
