package usecase

import (
	"context"
	"errors"
	"strings"

	"aether/internal/lead"
	repo "aether/internal/lead/repository"
	"aether/internal/model"
	"aether/pkg/docstore"
	"aether/pkg/hubspot"
)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input lead.CreateLeadInput) (lead.LeadOutput, error) {
	created, err := uc.repo.CreateLead(ctx, repo.CreateLeadOptions{
		WorkspaceID: sc.WorkspaceID,
		Name:        input.Name,
		Email:       input.Email,
		Company:     input.Company,
		Phone:       input.Phone,
		Stage:       input.Stage,
		Value:       input.Value,
		Demo:        input.Demo,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateLead: %v", err)
		return lead.LeadOutput{}, err
	}
	return lead.LeadOutput{Lead: created}, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input lead.ListLeadsInput) (lead.ListLeadsOutput, error) {
	leads, err := uc.repo.ListLeads(ctx, repo.ListLeadsOptions{
		WorkspaceID: sc.WorkspaceID,
		Stage:       input.Stage,
		DemoOnly:    input.DemoOnly,
		Limit:       input.Limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListLeads: %v", err)
		return lead.ListLeadsOutput{}, err
	}
	return lead.ListLeadsOutput{Leads: leads, Total: len(leads)}, nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (lead.LeadOutput, error) {
	l, err := uc.repo.GetLead(ctx, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return lead.LeadOutput{}, lead.ErrLeadNotFound
		}
		uc.l.Errorf(ctx, "uc.Detail GetLead: %v", err)
		return lead.LeadOutput{}, err
	}
	return lead.LeadOutput{Lead: l}, nil
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input lead.UpdateLeadInput) (lead.LeadOutput, error) {
	existing, err := uc.repo.GetLead(ctx, input.ID)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return lead.LeadOutput{}, lead.ErrLeadNotFound
		}
		uc.l.Errorf(ctx, "uc.Update GetLead: %v", err)
		return lead.LeadOutput{}, err
	}

	if input.Name != "" {
		existing.Name = input.Name
	}
	if input.Email != "" {
		existing.Email = input.Email
	}
	if input.Company != "" {
		existing.Company = input.Company
	}
	if input.Phone != "" {
		existing.Phone = input.Phone
	}
	if input.Stage != "" {
		existing.Stage = input.Stage
	}
	if input.Value != 0 {
		existing.Value = input.Value
	}

	updated, err := uc.repo.UpdateLead(ctx, existing)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateLead: %v", err)
		return lead.LeadOutput{}, err
	}
	return lead.LeadOutput{Lead: updated}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.DeleteLead(ctx, id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return lead.ErrLeadNotFound
		}
		uc.l.Errorf(ctx, "uc.Delete DeleteLead: %v", err)
		return err
	}
	return nil
}

// SyncToHubSpot pushes the lead to HubSpot. A first sync creates the
// contact and stores its remote ID; later syncs patch the same contact.
func (uc *implUseCase) SyncToHubSpot(ctx context.Context, sc model.Scope, id string) (lead.LeadOutput, error) {
	if uc.hubspot == nil {
		return lead.LeadOutput{}, lead.ErrHubSpotNotEnabled
	}

	l, err := uc.repo.GetLead(ctx, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return lead.LeadOutput{}, lead.ErrLeadNotFound
		}
		uc.l.Errorf(ctx, "uc.SyncToHubSpot GetLead: %v", err)
		return lead.LeadOutput{}, err
	}

	props := leadToContactProps(l)

	var contact *hubspot.Contact
	if l.HubSpotID == "" {
		contact, err = uc.hubspot.CreateContact(ctx, props)
	} else {
		contact, err = uc.hubspot.UpdateContact(ctx, l.HubSpotID, props)
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.SyncToHubSpot hubspot upsert: %v", err)
		return lead.LeadOutput{}, err
	}

	if l.HubSpotID != contact.ID {
		l.HubSpotID = contact.ID
		l, err = uc.repo.UpdateLead(ctx, l)
		if err != nil {
			uc.l.Errorf(ctx, "uc.SyncToHubSpot UpdateLead: %v", err)
			return lead.LeadOutput{}, err
		}
	}

	return lead.LeadOutput{Lead: l}, nil
}

// leadToContactProps maps a lead to HubSpot contact properties. The
// pipeline stage maps onto HubSpot lifecycle stages.
func leadToContactProps(l model.Lead) hubspot.ContactProperties {
	first, last := splitName(l.Name)

	return hubspot.ContactProperties{
		Email:          l.Email,
		FirstName:      first,
		LastName:       last,
		Company:        l.Company,
		Phone:          l.Phone,
		LifecycleStage: lifecycleStage(l.Stage),
	}
}

func lifecycleStage(stage model.LeadStage) string {
	switch stage {
	case model.LeadStageQualified:
		return "opportunity"
	case model.LeadStageWon:
		return "customer"
	default:
		return "lead"
	}
}

// splitName splits a display name into first/last on the final space.
func splitName(name string) (string, string) {
	name = strings.TrimSpace(name)
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return name, ""
	}
	return name[:idx], name[idx+1:]
}
