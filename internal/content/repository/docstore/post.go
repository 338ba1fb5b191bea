package docstore

import (
	"context"
	"encoding/json"
	"fmt"

	"aether/internal/content/repository"
	"aether/internal/model"
	pkgDocstore "aether/pkg/docstore"
	pkgLog "aether/pkg/log"
)

const collection = "posts"

type implRepository struct {
	store *pkgDocstore.Client
	l     pkgLog.Logger
}

// New creates a document-store backed scheduled post repository.
func New(store *pkgDocstore.Client, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		store: store,
		l:     l,
	}
}

func (r *implRepository) CreatePost(ctx context.Context, opt repository.CreatePostOptions) (model.ScheduledPost, error) {
	status := opt.Status
	if status == "" {
		status = model.PostStatusDraft
	}

	post := model.ScheduledPost{
		WorkspaceID: opt.WorkspaceID,
		Platform:    opt.Platform,
		Body:        opt.Body,
		Status:      status,
		PublishAt:   opt.PublishAt,
		Generated:   opt.Generated,
		Demo:        opt.Demo,
	}

	doc, err := r.store.Create(ctx, collection, post)
	if err != nil {
		r.l.Errorf(ctx, "content repository: failed to create document: %v", err)
		return model.ScheduledPost{}, err
	}
	return r.docToPost(doc)
}

func (r *implRepository) GetPost(ctx context.Context, id string) (model.ScheduledPost, error) {
	doc, err := r.store.Get(ctx, collection, id)
	if err != nil {
		return model.ScheduledPost{}, err
	}
	return r.docToPost(doc)
}

func (r *implRepository) ListPosts(ctx context.Context, opt repository.ListPostsOptions) ([]model.ScheduledPost, error) {
	filter := map[string]string{}
	if opt.WorkspaceID != "" {
		filter["workspace_id"] = opt.WorkspaceID
	}
	if opt.Status != "" {
		filter["status"] = string(opt.Status)
	}
	if opt.DemoOnly {
		filter["demo"] = "true"
	}

	limit := opt.Limit
	if limit == 0 {
		limit = 100
	}

	docs, err := r.store.List(ctx, collection, pkgDocstore.ListOptions{Filter: filter, Limit: limit})
	if err != nil {
		return nil, err
	}

	posts := make([]model.ScheduledPost, 0, len(docs))
	for i := range docs {
		p, err := r.docToPost(&docs[i])
		if err != nil {
			r.l.Errorf(ctx, "content repository: skipping malformed document %s: %v", docs[i].ID, err)
			continue
		}
		posts = append(posts, p)
	}
	return posts, nil
}

func (r *implRepository) UpdatePost(ctx context.Context, post model.ScheduledPost) (model.ScheduledPost, error) {
	doc, err := r.store.Update(ctx, collection, post.ID, post)
	if err != nil {
		r.l.Errorf(ctx, "content repository: failed to update document %s: %v", post.ID, err)
		return model.ScheduledPost{}, err
	}
	return r.docToPost(doc)
}

func (r *implRepository) DeletePost(ctx context.Context, id string) error {
	return r.store.Delete(ctx, collection, id)
}

func (r *implRepository) docToPost(doc *pkgDocstore.Document) (model.ScheduledPost, error) {
	var post model.ScheduledPost
	if err := json.Unmarshal(doc.Data, &post); err != nil {
		return model.ScheduledPost{}, fmt.Errorf("failed to decode post document: %w", err)
	}
	post.ID = doc.ID
	post.CreateTime = doc.CreateTime
	post.UpdateTime = doc.UpdateTime
	return post, nil
}
