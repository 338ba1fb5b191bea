package webhook

import (
	"aether/internal/chat"
	pkgLog "aether/pkg/log"
)

type Handler struct {
	chatUC   chat.UseCase
	security *SecurityValidator
	l        pkgLog.Logger
}

func NewHandler(
	chatUC chat.UseCase,
	securityConfig SecurityConfig,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		chatUC:   chatUC,
		security: NewSecurityValidator(securityConfig),
		l:        l,
	}
}
