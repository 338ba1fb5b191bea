package hubspot

// ContactProperties are the CRM contact fields Aether syncs.
type ContactProperties struct {
	Email          string `json:"email,omitempty"`
	FirstName      string `json:"firstname,omitempty"`
	LastName       string `json:"lastname,omitempty"`
	Company        string `json:"company,omitempty"`
	Phone          string `json:"phone,omitempty"`
	LifecycleStage string `json:"lifecyclestage,omitempty"`
}

// Contact is a HubSpot CRM contact object.
type Contact struct {
	ID         string            `json:"id"`
	Properties ContactProperties `json:"properties"`
	CreatedAt  string            `json:"createdAt,omitempty"`
	UpdatedAt  string            `json:"updatedAt,omitempty"`
}

// createContactRequest is the POST /crm/v3/objects/contacts body.
type createContactRequest struct {
	Properties ContactProperties `json:"properties"`
}

// apiError is HubSpot's error response body.
type apiError struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
