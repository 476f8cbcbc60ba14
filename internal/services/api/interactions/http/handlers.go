// Package http provides the interaction-recording endpoint
package http

import (
	"net/http"
	"time"

	perr "mingle/internal/platform/errors"
	pnet "mingle/internal/platform/net"

	"mingle/internal/core/affinity"
	"mingle/internal/modkit/httpkit"
	"mingle/internal/services/feed/domain"
)

type handlers struct {
	recorder domain.RecorderPort
}

// Register mounts the interaction routes
func Register(r httpkit.Router, recorder domain.RecorderPort) {
	h := &handlers{recorder: recorder}
	httpkit.PostJSON(r, "/", h.record)
}

// RecordRequest appends one interaction event
type RecordRequest struct {
	UserID          string     `json:"user_id"          validate:"omitempty,max=128"`
	ContentID       string     `json:"content_id"       validate:"required,max=128"`
	ContentType     string     `json:"content_type"     validate:"required,max=64" example:"story"`
	InteractionType string     `json:"interaction_type" validate:"required,max=64" example:"like"`
	OccurredAt      *time.Time `json:"occurred_at"      validate:"omitempty"`
}

// RecordResponse acknowledges the append
type RecordResponse struct {
	Recorded bool `json:"recorded" example:"true"`
}

// @Summary Record an interaction event
// @Tags Interactions
// @Accept json
// @Produce json
// @Param payload body RecordRequest true "interaction"
// @Success 200 {object} RecordResponse
// @Router /interactions [post]
func (h *handlers) record(r *http.Request, in RecordRequest) (any, error) {
	userID := in.UserID
	if userID == "" {
		userID = pnet.UserID(r.Context())
	}
	if userID == "" {
		return nil, perr.InvalidArgf("user_id is required")
	}
	if !affinity.KnownInteraction(in.InteractionType) {
		return nil, perr.InvalidArgf("unknown interaction_type %q", in.InteractionType)
	}

	ev := domain.InteractionEvent{
		UserID:          userID,
		ContentID:       in.ContentID,
		ContentType:     in.ContentType,
		InteractionType: in.InteractionType,
	}
	if in.OccurredAt != nil {
		ev.OccurredAt = *in.OccurredAt
	}

	if err := h.recorder.RecordInteraction(r.Context(), ev); err != nil {
		return nil, err
	}
	return RecordResponse{Recorded: true}, nil
}
