package http

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/vncsmyrnk/colorpoll/internal/core/ports"
)

type VoteHandler struct {
	service ports.SyncService
}

func NewVoteHandler(service ports.SyncService) *VoteHandler {
	return &VoteHandler{
		service: service,
	}
}

// Vote casts a vote and sends the browser back to the dashboard. The outcome
// shows up in the dashboard status line, never as an HTTP error.
func (h *VoteHandler) Vote(w http.ResponseWriter, r *http.Request) {
	color := chi.URLParam(r, "color")
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(color)
		if err != nil {
			http.Error(w, "invalid color", http.StatusBadRequest)
			return
		}
		color = unescaped
	}
	if color == "" {
		http.Error(w, "missing color", http.StatusBadRequest)
		return
	}

	// a closed browser tab must not abort a vote already on its way
	h.service.CastVote(context.WithoutCancel(r.Context()), color)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
