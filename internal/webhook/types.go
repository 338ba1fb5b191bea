package webhook

// SecurityConfig holds Slack webhook security settings.
type SecurityConfig struct {
	SigningSecret   string   // Slack app signing secret
	AllowedIPs      []string // IP whitelist (optional)
	RateLimitPerMin int      // Max requests per minute per team
}
