package http

import (
	"embed"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/vncsmyrnk/colorpoll/internal/core/domain"
	"github.com/vncsmyrnk/colorpoll/internal/core/ports"
)

//go:embed templates/*.html
var templateFS embed.FS

var dashboardTemplate = template.Must(
	template.New("dashboard.html").Funcs(template.FuncMap{
		"comma":      humanize.Comma,
		"pathEscape": url.PathEscape,
		"buttonText": buttonTextColor,
	}).ParseFS(templateFS, "templates/dashboard.html"),
)

type DashboardHandler struct {
	service ports.SyncService
	refresh time.Duration
}

func NewDashboardHandler(service ports.SyncService, refresh time.Duration) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		refresh: refresh,
	}
}

type dashboardView struct {
	Status         domain.Status
	Entries        []domain.TallyEntry
	RefreshSeconds int
	UpdatedAt      string
}

func (h *DashboardHandler) Index(w http.ResponseWriter, r *http.Request) {
	snap := h.service.Snapshot()

	view := dashboardView{
		Status:         snap.Status,
		Entries:        snap.Tally.Entries(),
		RefreshSeconds: refreshSeconds(h.refresh),
	}
	if !snap.UpdatedAt.IsZero() {
		view.UpdatedAt = humanize.Time(snap.UpdatedAt)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTemplate.Execute(w, view); err != nil {
		slog.Error("failed to render dashboard", slog.Any("error", err))
	}
}

type statusResponse struct {
	Text string `json:"text"`
	Kind string `json:"kind"`
}

type tallyEntryResponse struct {
	Color string `json:"color"`
	Count int64  `json:"count"`
}

type talliesResponse struct {
	Status    statusResponse       `json:"status"`
	Tallies   []tallyEntryResponse `json:"tallies"`
	UpdatedAt *time.Time           `json:"updated_at,omitempty"`
}

// Tallies godoc
// @Summary      Current poll state
// @Description  Returns the mirrored tallies in backend order together with the latest status.
// @Tags         tallies
// @Produce      json
// @Success      200
// @Router       /api/tallies [get]
func (h *DashboardHandler) Tallies(w http.ResponseWriter, r *http.Request) {
	snap := h.service.Snapshot()

	resp := talliesResponse{
		Status:  statusResponse{Text: snap.Status.Text, Kind: string(snap.Status.Kind)},
		Tallies: make([]tallyEntryResponse, 0, snap.Tally.Len()),
	}
	for _, e := range snap.Tally.Entries() {
		resp.Tallies = append(resp.Tallies, tallyEntryResponse{Color: e.Color, Count: e.Count})
	}
	if !snap.UpdatedAt.IsZero() {
		updatedAt := snap.UpdatedAt.UTC()
		resp.UpdatedAt = &updatedAt
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// buttonTextColor keeps the label readable on light buttons.
func buttonTextColor(color string) string {
	if color == "Yellow" {
		return "black"
	}
	return "white"
}

func refreshSeconds(d time.Duration) int {
	s := int(d.Round(time.Second) / time.Second)
	if s < 1 {
		return 1
	}
	return s
}
