package repository

import "aether/internal/model"

// CreatePostOptions holds the parameters for creating a scheduled post.
type CreatePostOptions struct {
	WorkspaceID string
	Platform    string
	Body        string
	Status      model.PostStatus
	PublishAt   string
	Generated   bool
	Demo        bool
}

// ListPostsOptions holds the parameters for listing scheduled posts.
type ListPostsOptions struct {
	WorkspaceID string
	Status      model.PostStatus
	DemoOnly    bool
	Limit       int
}
