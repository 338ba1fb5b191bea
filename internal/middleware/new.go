package middleware

import (
	"aether/pkg/log"
)

type Middleware struct {
	l                  log.Logger
	defaultWorkspaceID string
}

func New(l log.Logger, defaultWorkspaceID string) Middleware {
	return Middleware{
		l:                  l,
		defaultWorkspaceID: defaultWorkspaceID,
	}
}
