package lead

import "errors"

var (
	ErrLeadNotFound      = errors.New("lead not found")
	ErrHubSpotNotEnabled = errors.New("hubspot sync is not configured")
)
