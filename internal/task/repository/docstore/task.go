package docstore

import (
	"context"
	"encoding/json"
	"fmt"

	"aether/internal/model"
	"aether/internal/task/repository"
	pkgDocstore "aether/pkg/docstore"
	pkgLog "aether/pkg/log"
)

const collection = "tasks"

type implRepository struct {
	store *pkgDocstore.Client
	l     pkgLog.Logger
}

// New creates a document-store backed task repository.
func New(store *pkgDocstore.Client, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		store: store,
		l:     l,
	}
}

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	status := opt.Status
	if status == "" {
		status = model.TaskStatusTodo
	}

	task := model.Task{
		WorkspaceID: opt.WorkspaceID,
		ProjectID:   opt.ProjectID,
		Title:       opt.Title,
		Description: opt.Description,
		Status:      status,
		Priority:    opt.Priority,
		DueDate:     opt.DueDate,
		AssigneeID:  opt.AssigneeID,
		Demo:        opt.Demo,
	}

	doc, err := r.store.Create(ctx, collection, task)
	if err != nil {
		r.l.Errorf(ctx, "task repository: failed to create document: %v", err)
		return model.Task{}, err
	}
	return r.docToTask(doc)
}

func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	doc, err := r.store.Get(ctx, collection, id)
	if err != nil {
		return model.Task{}, err
	}
	return r.docToTask(doc)
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	filter := map[string]string{}
	if opt.WorkspaceID != "" {
		filter["workspace_id"] = opt.WorkspaceID
	}
	if opt.ProjectID != "" {
		filter["project_id"] = opt.ProjectID
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

	tasks := make([]model.Task, 0, len(docs))
	for i := range docs {
		t, err := r.docToTask(&docs[i])
		if err != nil {
			r.l.Errorf(ctx, "task repository: skipping malformed document %s: %v", docs[i].ID, err)
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func (r *implRepository) UpdateTask(ctx context.Context, task model.Task) (model.Task, error) {
	doc, err := r.store.Update(ctx, collection, task.ID, task)
	if err != nil {
		r.l.Errorf(ctx, "task repository: failed to update document %s: %v", task.ID, err)
		return model.Task{}, err
	}
	return r.docToTask(doc)
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	return r.store.Delete(ctx, collection, id)
}

// docToTask converts a store document into the internal model. Document
// identity and timestamps win over whatever is inside the data payload.
func (r *implRepository) docToTask(doc *pkgDocstore.Document) (model.Task, error) {
	var task model.Task
	if err := json.Unmarshal(doc.Data, &task); err != nil {
		return model.Task{}, fmt.Errorf("failed to decode task document: %w", err)
	}
	task.ID = doc.ID
	task.CreateTime = doc.CreateTime
	task.UpdateTime = doc.UpdateTime
	return task, nil
}
