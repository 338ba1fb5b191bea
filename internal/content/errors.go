package content

import "errors"

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrGenerationFailed = errors.New("content generation failed")
	ErrBadModelOutput   = errors.New("model returned unparseable output")
)
