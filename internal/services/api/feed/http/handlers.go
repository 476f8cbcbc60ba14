// Package http provides the feed endpoints
package http

import (
	"net/http"
	"strconv"

	perr "mingle/internal/platform/errors"
	pnet "mingle/internal/platform/net"

	"mingle/internal/modkit/httpkit"
	"mingle/internal/services/feed/domain"
)

type handlers struct {
	generate domain.GeneratePort
	stats    domain.StatsPort
}

// Register mounts the feed routes
func Register(r httpkit.Router, generate domain.GeneratePort, stats domain.StatsPort) {
	h := &handlers{generate: generate, stats: stats}

	httpkit.PostJSON(r, "/home", h.home)
	httpkit.Get(r, "/stats", h.tierStats)
}

// HomeRequest asks for a personalized page
type HomeRequest struct {
	UserID string `json:"user_id" validate:"omitempty,max=128" example:"8a46e3c2-6f1b-4f3e-9f6c-02f9a7c1d410"`
	Count  int    `json:"count"   validate:"omitempty,min=1,max=100" example:"20"`
	Cursor string `json:"cursor"  validate:"omitempty,max=512"`
}

// @Summary Generate the personalized home feed
// @Tags Feed
// @Accept json
// @Produce json
// @Param payload body HomeRequest true "feed request"
// @Success 200 {object} domain.FeedResult
// @Router /feed/home [post]
func (h *handlers) home(r *http.Request, in HomeRequest) (any, error) {
	userID := in.UserID
	if userID == "" {
		userID = pnet.UserID(r.Context())
	}
	if userID == "" {
		return nil, perr.InvalidArgf("user_id is required")
	}

	res, err := h.generate.GenerateFeed(r.Context(), userID, in.Count, in.Cursor)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// StatsResponse wraps the tier mix rows
type StatsResponse struct {
	Days int                   `json:"days" example:"7"`
	Rows []domain.TierStatsRow `json:"rows"`
}

// @Summary Tier mix of served feeds per day
// @Tags Feed
// @Produce json
// @Param days query int false "trailing days" default(7)
// @Success 200 {object} StatsResponse
// @Router /feed/stats [get]
func (h *handlers) tierStats(r *http.Request) (any, error) {
	days := 7
	if v := r.URL.Query().Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 90 {
			return nil, perr.InvalidArgf("days must be an integer between 1 and 90")
		}
		days = n
	}

	rows, err := h.stats.TierStats(r.Context(), days)
	if err != nil {
		return nil, err
	}
	return StatsResponse{Days: days, Rows: rows}, nil
}
