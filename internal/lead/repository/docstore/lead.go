package docstore

import (
	"context"
	"encoding/json"
	"fmt"

	"aether/internal/lead/repository"
	"aether/internal/model"
	pkgDocstore "aether/pkg/docstore"
	pkgLog "aether/pkg/log"
)

const collection = "leads"

type implRepository struct {
	store *pkgDocstore.Client
	l     pkgLog.Logger
}

// New creates a document-store backed lead repository.
func New(store *pkgDocstore.Client, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		store: store,
		l:     l,
	}
}

func (r *implRepository) CreateLead(ctx context.Context, opt repository.CreateLeadOptions) (model.Lead, error) {
	stage := opt.Stage
	if stage == "" {
		stage = model.LeadStageNew
	}

	lead := model.Lead{
		WorkspaceID: opt.WorkspaceID,
		Name:        opt.Name,
		Email:       opt.Email,
		Company:     opt.Company,
		Phone:       opt.Phone,
		Stage:       stage,
		Value:       opt.Value,
		Demo:        opt.Demo,
	}

	doc, err := r.store.Create(ctx, collection, lead)
	if err != nil {
		r.l.Errorf(ctx, "lead repository: failed to create document: %v", err)
		return model.Lead{}, err
	}
	return r.docToLead(doc)
}

func (r *implRepository) GetLead(ctx context.Context, id string) (model.Lead, error) {
	doc, err := r.store.Get(ctx, collection, id)
	if err != nil {
		return model.Lead{}, err
	}
	return r.docToLead(doc)
}

func (r *implRepository) ListLeads(ctx context.Context, opt repository.ListLeadsOptions) ([]model.Lead, error) {
	filter := map[string]string{}
	if opt.WorkspaceID != "" {
		filter["workspace_id"] = opt.WorkspaceID
	}
	if opt.Stage != "" {
		filter["stage"] = string(opt.Stage)
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

	leads := make([]model.Lead, 0, len(docs))
	for i := range docs {
		l, err := r.docToLead(&docs[i])
		if err != nil {
			r.l.Errorf(ctx, "lead repository: skipping malformed document %s: %v", docs[i].ID, err)
			continue
		}
		leads = append(leads, l)
	}
	return leads, nil
}

func (r *implRepository) UpdateLead(ctx context.Context, lead model.Lead) (model.Lead, error) {
	doc, err := r.store.Update(ctx, collection, lead.ID, lead)
	if err != nil {
		r.l.Errorf(ctx, "lead repository: failed to update document %s: %v", lead.ID, err)
		return model.Lead{}, err
	}
	return r.docToLead(doc)
}

func (r *implRepository) DeleteLead(ctx context.Context, id string) error {
	return r.store.Delete(ctx, collection, id)
}

func (r *implRepository) docToLead(doc *pkgDocstore.Document) (model.Lead, error) {
	var lead model.Lead
	if err := json.Unmarshal(doc.Data, &lead); err != nil {
		return model.Lead{}, fmt.Errorf("failed to decode lead document: %w", err)
	}
	lead.ID = doc.ID
	lead.CreateTime = doc.CreateTime
	lead.UpdateTime = doc.UpdateTime
	return lead, nil
}
