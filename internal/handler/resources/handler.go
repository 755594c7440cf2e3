package resources

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Anshulmehra001/plantpal/backend/internal/model/resources"
	"github.com/Anshulmehra001/plantpal/backend/pkg/utils"
)

// Handler serves the static mental health resource catalogue.
type Handler struct{}

func New() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/resources/helplines", h.handleHelplines)
	r.Get("/resources/professionals", h.handleProfessionals)
	r.Get("/resources/self-help", h.handleSelfHelp)
	r.Get("/resources/search", h.handleSearch)
	r.Get("/resources/emergency", h.handleEmergency)
}

func (h *Handler) handleHelplines(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"helplines": resources.Helplines(),
		"emergency": resources.EmergencyNumber,
	})
}

func (h *Handler) handleProfessionals(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"professionals": resources.Professionals(),
	})
}

// handleSelfHelp lists guided exercises, optionally filtered by a
// category substring.
func (h *Handler) handleSelfHelp(w http.ResponseWriter, r *http.Request) {
	all := resources.SelfHelp()

	categories := make([]string, 0, len(all))
	seen := make(map[string]struct{})
	for _, exercise := range all {
		if _, ok := seen[exercise.Category]; !ok {
			seen[exercise.Category] = struct{}{}
			categories = append(categories, exercise.Category)
		}
	}

	filtered := all
	if category := r.URL.Query().Get("category"); category != "" {
		needle := strings.ToLower(category)
		filtered = filtered[:0:0]
		for _, exercise := range all {
			if strings.Contains(strings.ToLower(exercise.Category), needle) {
				filtered = append(filtered, exercise)
			}
		}
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"selfHelp":   filtered,
		"categories": categories,
	})
}

// handleSearch runs a substring match across the whole catalogue.
func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		utils.RespondError(w, http.StatusBadRequest, "Search query is required")
		return
	}
	needle := strings.ToLower(query)

	helplines := []resources.Helpline{}
	for _, helpline := range resources.Helplines() {
		if strings.Contains(strings.ToLower(helpline.Name), needle) ||
			strings.Contains(strings.ToLower(helpline.Description), needle) ||
			containsFold(helpline.Languages, needle) {
			helplines = append(helplines, helpline)
		}
	}

	professionals := []resources.Professional{}
	for _, professional := range resources.Professionals() {
		if strings.Contains(strings.ToLower(professional.Name), needle) ||
			strings.Contains(strings.ToLower(professional.Description), needle) ||
			containsFold(professional.Services, needle) {
			professionals = append(professionals, professional)
		}
	}

	selfHelp := []resources.Exercise{}
	for _, exercise := range resources.SelfHelp() {
		if strings.Contains(strings.ToLower(exercise.Title), needle) ||
			strings.Contains(strings.ToLower(exercise.Description), needle) ||
			strings.Contains(strings.ToLower(exercise.Category), needle) {
			selfHelp = append(selfHelp, exercise)
		}
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"query":        query,
		"totalResults": len(helplines) + len(professionals) + len(selfHelp),
		"results": map[string]any{
			"helplines":     helplines,
			"professionals": professionals,
			"selfHelp":      selfHelp,
		},
	})
}

func (h *Handler) handleEmergency(w http.ResponseWriter, r *http.Request) {
	crisis := []resources.Helpline{}
	for _, helpline := range resources.Helplines() {
		if helpline.Available == "24/7" {
			crisis = append(crisis, helpline)
		}
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"emergency": map[string]string{
			"number":      resources.EmergencyNumber,
			"description": "National Emergency Number (Police, Fire, Medical)",
		},
		"crisis": crisis,
		"message": "If you're in immediate danger or having thoughts of self-harm, " +
			"please call emergency services or a crisis helpline immediately.",
	})
}

func containsFold(values []string, needle string) bool {
	for _, value := range values {
		if strings.Contains(strings.ToLower(value), needle) {
			return true
		}
	}
	return false
}
