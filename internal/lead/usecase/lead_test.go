package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"aether/internal/lead"
	repo "aether/internal/lead/repository"
	"aether/internal/model"
	"aether/pkg/docstore"
	"aether/pkg/hubspot"
	pkgLog "aether/pkg/log"
)

type mockLeadRepo struct {
	leads  map[string]model.Lead
	nextID int
}

func newMockLeadRepo() *mockLeadRepo {
	return &mockLeadRepo{leads: map[string]model.Lead{}}
}

func (m *mockLeadRepo) CreateLead(_ context.Context, opt repo.CreateLeadOptions) (model.Lead, error) {
	m.nextID++
	l := model.Lead{
		ID:          fmt.Sprintf("lead-%d", m.nextID),
		WorkspaceID: opt.WorkspaceID,
		Name:        opt.Name,
		Email:       opt.Email,
		Company:     opt.Company,
		Phone:       opt.Phone,
		Stage:       opt.Stage,
		Value:       opt.Value,
		Demo:        opt.Demo,
	}
	if l.Stage == "" {
		l.Stage = model.LeadStageNew
	}
	m.leads[l.ID] = l
	return l, nil
}

func (m *mockLeadRepo) GetLead(_ context.Context, id string) (model.Lead, error) {
	l, ok := m.leads[id]
	if !ok {
		return model.Lead{}, docstore.ErrNotFound
	}
	return l, nil
}

func (m *mockLeadRepo) ListLeads(_ context.Context, opt repo.ListLeadsOptions) ([]model.Lead, error) {
	var out []model.Lead
	for _, l := range m.leads {
		if opt.Stage != "" && l.Stage != opt.Stage {
			continue
		}
		if opt.DemoOnly && !l.Demo {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (m *mockLeadRepo) UpdateLead(_ context.Context, l model.Lead) (model.Lead, error) {
	if _, ok := m.leads[l.ID]; !ok {
		return model.Lead{}, docstore.ErrNotFound
	}
	m.leads[l.ID] = l
	return l, nil
}

func (m *mockLeadRepo) DeleteLead(_ context.Context, id string) error {
	if _, ok := m.leads[id]; !ok {
		return docstore.ErrNotFound
	}
	delete(m.leads, id)
	return nil
}

type mockHubSpot struct {
	created map[string]hubspot.ContactProperties
	updated map[string]hubspot.ContactProperties
	nextID  int
	err     error
}

func newMockHubSpot() *mockHubSpot {
	return &mockHubSpot{
		created: map[string]hubspot.ContactProperties{},
		updated: map[string]hubspot.ContactProperties{},
	}
}

func (m *mockHubSpot) CreateContact(_ context.Context, props hubspot.ContactProperties) (*hubspot.Contact, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.nextID++
	id := fmt.Sprintf("hs-%d", m.nextID)
	m.created[id] = props
	return &hubspot.Contact{ID: id, Properties: props}, nil
}

func (m *mockHubSpot) UpdateContact(_ context.Context, id string, props hubspot.ContactProperties) (*hubspot.Contact, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.updated[id] = props
	return &hubspot.Contact{ID: id, Properties: props}, nil
}

var testScope = model.Scope{UserID: "u1", WorkspaceID: "ws1"}

func TestSyncToHubSpotFirstSync(t *testing.T) {
	r := newMockLeadRepo()
	hs := newMockHubSpot()
	uc := New(r, hs, pkgLog.NewNoop())

	ctx := context.Background()
	out, err := uc.Create(ctx, testScope, lead.CreateLeadInput{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Company: "Analytical Engines",
		Stage:   model.LeadStageQualified,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	synced, err := uc.SyncToHubSpot(ctx, testScope, out.Lead.ID)
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if synced.Lead.HubSpotID == "" {
		t.Fatal("expected remote ID to be stored after first sync")
	}

	props, ok := hs.created[synced.Lead.HubSpotID]
	if !ok {
		t.Fatal("expected a contact to be created")
	}
	if props.FirstName != "Ada" || props.LastName != "Lovelace" {
		t.Errorf("name split wrong: %q %q", props.FirstName, props.LastName)
	}
	if props.LifecycleStage != "opportunity" {
		t.Errorf("expected qualified -> opportunity, got %q", props.LifecycleStage)
	}
}

func TestSyncToHubSpotSecondSyncPatches(t *testing.T) {
	r := newMockLeadRepo()
	hs := newMockHubSpot()
	uc := New(r, hs, pkgLog.NewNoop())

	ctx := context.Background()
	out, err := uc.Create(ctx, testScope, lead.CreateLeadInput{Name: "Grace", Email: "g@example.com"})
	if err != nil {
		t.Fatal(err)
	}

	first, err := uc.SyncToHubSpot(ctx, testScope, out.Lead.ID)
	if err != nil {
		t.Fatal(err)
	}
	second, err := uc.SyncToHubSpot(ctx, testScope, out.Lead.ID)
	if err != nil {
		t.Fatal(err)
	}

	if second.Lead.HubSpotID != first.Lead.HubSpotID {
		t.Errorf("remote ID changed between syncs: %q vs %q", first.Lead.HubSpotID, second.Lead.HubSpotID)
	}
	if len(hs.created) != 1 {
		t.Errorf("expected exactly one create, got %d", len(hs.created))
	}
	if _, ok := hs.updated[first.Lead.HubSpotID]; !ok {
		t.Error("expected second sync to patch the existing contact")
	}
}

func TestSyncToHubSpotNotConfigured(t *testing.T) {
	r := newMockLeadRepo()
	uc := New(r, nil, pkgLog.NewNoop())

	ctx := context.Background()
	out, err := uc.Create(ctx, testScope, lead.CreateLeadInput{Name: "Solo"})
	if err != nil {
		t.Fatal(err)
	}

	_, err = uc.SyncToHubSpot(ctx, testScope, out.Lead.ID)
	if !errors.Is(err, lead.ErrHubSpotNotEnabled) {
		t.Fatalf("expected ErrHubSpotNotEnabled, got %v", err)
	}
}

func TestSyncToHubSpotRemoteFailureKeepsLead(t *testing.T) {
	r := newMockLeadRepo()
	hs := newMockHubSpot()
	hs.err = errors.New("hubspot down")
	uc := New(r, hs, pkgLog.NewNoop())

	ctx := context.Background()
	out, err := uc.Create(ctx, testScope, lead.CreateLeadInput{Name: "Flaky"})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := uc.SyncToHubSpot(ctx, testScope, out.Lead.ID); err == nil {
		t.Fatal("expected sync error")
	}

	got, err := uc.Detail(ctx, testScope, out.Lead.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Lead.HubSpotID != "" {
		t.Errorf("failed sync must not store a remote ID, got %q", got.Lead.HubSpotID)
	}
}

func TestLeadNotFound(t *testing.T) {
	uc := New(newMockLeadRepo(), nil, pkgLog.NewNoop())

	if _, err := uc.Detail(context.Background(), testScope, "nope"); !errors.Is(err, lead.ErrLeadNotFound) {
		t.Errorf("Detail: expected ErrLeadNotFound, got %v", err)
	}
	if _, err := uc.SyncToHubSpot(context.Background(), testScope, "nope"); !errors.Is(err, lead.ErrHubSpotNotEnabled) {
		t.Errorf("SyncToHubSpot without client: expected ErrHubSpotNotEnabled, got %v", err)
	}
}
