package rest

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cthulhu-engineer/goit-cs-hw-06/internal/domain/models"
	apperrors "github.com/cthulhu-engineer/goit-cs-hw-06/pkg/errors"
)

// MessageReader defines the read side of the message API
type MessageReader interface {
	List(ctx context.Context, limit int64) ([]models.Message, error)
	Get(ctx context.Context, id string) (*models.Message, error)
	Count(ctx context.Context) (int64, error)
}

// MessageForwarder relays raw form payloads to the ingest server
type MessageForwarder interface {
	Forward(payload []byte) error
}

// MessageHandler handles message submission and the read API
type MessageHandler struct {
	svc       MessageReader
	forwarder MessageForwarder
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(svc MessageReader, forwarder MessageForwarder) *MessageHandler {
	return &MessageHandler{svc: svc, forwarder: forwarder}
}

// Submit handles POST /message.
// The raw urlencoded body travels to the ingest server as one UDP datagram;
// the HTTP side never writes to the store itself. On success the browser is
// sent back to the index page.
func (h *MessageHandler) Submit(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		RespondAppError(c, apperrors.NewValidationError("body", err.Error()))
		return
	}
	if len(bytes.TrimSpace(payload)) == 0 {
		RespondAppError(c, apperrors.NewValidationError("body", "empty form submission"))
		return
	}

	if err := h.forwarder.Forward(payload); err != nil {
		RespondAppError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// GetMessages handles GET /api/messages
func (h *MessageHandler) GetMessages(c *gin.Context) {
	var limit int64
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			RespondAppError(c, apperrors.NewValidationError("limit", "must be an integer"))
			return
		}
		limit = n
	}

	HandleGetEnvelope(c, "messages", func() (interface{}, error) {
		return h.svc.List(c.Request.Context(), limit)
	})
}

// GetMessage handles GET /api/messages/:id
func (h *MessageHandler) GetMessage(c *gin.Context) {
	id := c.Param("id")

	HandleGetEnvelope(c, "message", func() (interface{}, error) {
		return h.svc.Get(c.Request.Context(), id)
	})
}

// GetCount handles GET /api/messages/count
func (h *MessageHandler) GetCount(c *gin.Context) {
	HandleGetEnvelope(c, "count", func() (interface{}, error) {
		return h.svc.Count(c.Request.Context())
	})
}
