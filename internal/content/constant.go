package content

// Generation prompts. All of them instruct the model to answer with
// bare JSON (or plain text for posts) so responses stay parseable.
const (
	PromptSocialPost = `You are a social media copywriter for a small business.
Write a single %s post about: %s

Tone: %s
Rules:
- No hashtag spam (3 hashtags max)
- No emojis unless the tone is casual
- Return ONLY the post text, no preamble, no quotes`

	PromptWebsiteAudit = `You are a website consultant for small businesses.
Audit the website at %s.
Additional context: %s

Return JSON with this exact format:
{
  "score": 0-100,
  "findings": [
    {"category": "seo|performance|content|accessibility", "severity": "low|medium|high", "issue": "...", "fix": "..."}
  ]
}
Return ONLY the JSON object.`

	PromptMeetingSummary = `You are an assistant summarizing a small-business team meeting.
Meeting notes:
%s

Return JSON with this exact format:
{
  "summary": "2-3 sentence summary",
  "action_items": [
    {"title": "...", "owner": "name or empty", "due": "relative phrase like 'in 3 days' or 'next friday', or empty"}
  ],
  "next_meeting": "relative phrase or empty"
}
Return ONLY the JSON object.`
)

// Generation settings.
const (
	SocialPostTemperature = 0.8
	AuditTemperature      = 0.3
	SummaryTemperature    = 0.2

	DefaultTone     = "professional"
	DefaultPlatform = "linkedin"
)
