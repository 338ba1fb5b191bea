package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"aether/internal/task"
	"aether/pkg/dateguard"
	"aether/pkg/response"
)

// respondError translates domain errors into HTTP responses. Failed
// date validation returns 400 with the full engine result so clients
// can render the reason, suggestion and explanation.
func (h *handler) respondError(c *gin.Context, err error) {
	var verr *dateguard.ValidationError
	if errors.As(err, &verr) {
		response.Error(c, verr, map[string]interface{}{"validation": verr.Result})
		return
	}

	switch {
	case errors.Is(err, task.ErrTaskNotFound), errors.Is(err, task.ErrProjectNotFound):
		response.NotFound(c, err)
	default:
		response.InternalError(c, err)
	}
}
