package docstore

import (
	"context"
	"encoding/json"
	"fmt"

	"aether/internal/model"
	"aether/internal/project/repository"
	pkgDocstore "aether/pkg/docstore"
	pkgLog "aether/pkg/log"
)

const collection = "projects"

type implRepository struct {
	store *pkgDocstore.Client
	l     pkgLog.Logger
}

// New creates a document-store backed project repository.
func New(store *pkgDocstore.Client, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		store: store,
		l:     l,
	}
}

func (r *implRepository) CreateProject(ctx context.Context, opt repository.CreateProjectOptions) (model.Project, error) {
	project := model.Project{
		WorkspaceID: opt.WorkspaceID,
		Name:        opt.Name,
		Description: opt.Description,
		Deadline:    opt.Deadline,
		Color:       opt.Color,
		Demo:        opt.Demo,
	}

	doc, err := r.store.Create(ctx, collection, project)
	if err != nil {
		r.l.Errorf(ctx, "project repository: failed to create document: %v", err)
		return model.Project{}, err
	}
	return r.docToProject(doc)
}

func (r *implRepository) GetProject(ctx context.Context, id string) (model.Project, error) {
	doc, err := r.store.Get(ctx, collection, id)
	if err != nil {
		return model.Project{}, err
	}
	return r.docToProject(doc)
}

func (r *implRepository) ListProjects(ctx context.Context, opt repository.ListProjectsOptions) ([]model.Project, error) {
	filter := map[string]string{}
	if opt.WorkspaceID != "" {
		filter["workspace_id"] = opt.WorkspaceID
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

	projects := make([]model.Project, 0, len(docs))
	for i := range docs {
		p, err := r.docToProject(&docs[i])
		if err != nil {
			r.l.Errorf(ctx, "project repository: skipping malformed document %s: %v", docs[i].ID, err)
			continue
		}
		projects = append(projects, p)
	}
	return projects, nil
}

func (r *implRepository) UpdateProject(ctx context.Context, project model.Project) (model.Project, error) {
	doc, err := r.store.Update(ctx, collection, project.ID, project)
	if err != nil {
		r.l.Errorf(ctx, "project repository: failed to update document %s: %v", project.ID, err)
		return model.Project{}, err
	}
	return r.docToProject(doc)
}

func (r *implRepository) DeleteProject(ctx context.Context, id string) error {
	return r.store.Delete(ctx, collection, id)
}

func (r *implRepository) docToProject(doc *pkgDocstore.Document) (model.Project, error) {
	var project model.Project
	if err := json.Unmarshal(doc.Data, &project); err != nil {
		return model.Project{}, fmt.Errorf("failed to decode project document: %w", err)
	}
	project.ID = doc.ID
	project.CreateTime = doc.CreateTime
	project.UpdateTime = doc.UpdateTime
	return project, nil
}
