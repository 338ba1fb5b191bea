package http

import (
	"aether/internal/lead"
	"aether/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Name    string  `json:"name"    binding:"required,min=1,max=255"`
	Email   string  `json:"email"   binding:"omitempty,email"`
	Company string  `json:"company" binding:"max=255"`
	Phone   string  `json:"phone"   binding:"max=50"`
	Stage   string  `json:"stage"   binding:"omitempty,oneof=new contacted qualified won lost"`
	Value   float64 `json:"value"   binding:"omitempty,gte=0"`
}

func (r createReq) toInput() lead.CreateLeadInput {
	return lead.CreateLeadInput{
		Name:    r.Name,
		Email:   r.Email,
		Company: r.Company,
		Phone:   r.Phone,
		Stage:   model.LeadStage(r.Stage),
		Value:   r.Value,
	}
}

type listReq struct {
	Stage string `form:"stage"`
	Limit int    `form:"limit"`
}

func (r listReq) toInput() lead.ListLeadsInput {
	limit := r.Limit
	if limit <= 0 || limit > 200 {
		limit = 100
	}
	return lead.ListLeadsInput{
		Stage: model.LeadStage(r.Stage),
		Limit: limit,
	}
}

type updateReq struct {
	ID      string  `json:"-"` // populated from URI param
	Name    string  `json:"name"    binding:"omitempty,min=1,max=255"`
	Email   string  `json:"email"   binding:"omitempty,email"`
	Company string  `json:"company" binding:"omitempty,max=255"`
	Phone   string  `json:"phone"   binding:"omitempty,max=50"`
	Stage   string  `json:"stage"   binding:"omitempty,oneof=new contacted qualified won lost"`
	Value   float64 `json:"value"   binding:"omitempty,gte=0"`
}

func (r updateReq) toInput() lead.UpdateLeadInput {
	return lead.UpdateLeadInput{
		ID:      r.ID,
		Name:    r.Name,
		Email:   r.Email,
		Company: r.Company,
		Phone:   r.Phone,
		Stage:   model.LeadStage(r.Stage),
		Value:   r.Value,
	}
}

// --- Response DTOs ---

type leadResp struct {
	Lead model.Lead `json:"lead"`
}

func (h *handler) newLeadResp(out lead.LeadOutput) leadResp {
	return leadResp{Lead: out.Lead}
}

type listResp struct {
	Leads []model.Lead `json:"leads"`
	Total int          `json:"total"`
}

func (h *handler) newListResp(out lead.ListLeadsOutput) listResp {
	leads := out.Leads
	if leads == nil {
		leads = []model.Lead{}
	}
	return listResp{Leads: leads, Total: out.Total}
}
