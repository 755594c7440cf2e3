package feedback

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Anshulmehra001/plantpal/backend/internal/service/feedback"
	"github.com/Anshulmehra001/plantpal/backend/pkg/utils"
)

const maxFeedbackLength = 500

// Handler accepts user feedback and exposes aggregate statistics.
type Handler struct {
	store *feedback.Store
}

func New(store *feedback.Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/feedback", h.handleSubmit)
	r.Get("/feedback/stats", h.handleStats)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID string `json:"sessionId"`
		Rating    int    `json:"rating"`
		Feedback  string `json:"feedback"`
		Category  string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondErrorCode(w, http.StatusBadRequest, "INVALID_FEEDBACK", "invalid request body")
		return
	}

	if strings.TrimSpace(payload.SessionID) == "" {
		utils.RespondErrorCode(w, http.StatusBadRequest, "INVALID_FEEDBACK", "Session ID is required")
		return
	}
	if payload.Rating < 1 || payload.Rating > 5 {
		utils.RespondErrorCode(w, http.StatusBadRequest, "INVALID_FEEDBACK", "Rating must be between 1 and 5")
		return
	}
	if len(payload.Feedback) > maxFeedbackLength {
		utils.RespondErrorCode(w, http.StatusBadRequest, "INVALID_FEEDBACK", "Feedback must be less than 500 characters")
		return
	}

	category := payload.Category
	if category == "" {
		category = feedback.CategoryOther
	}
	if !feedback.ValidCategory(category) {
		utils.RespondErrorCode(w, http.StatusBadRequest, "INVALID_FEEDBACK", "Unknown feedback category")
		return
	}

	h.store.Add(feedback.Entry{
		SessionID: payload.SessionID,
		Rating:    payload.Rating,
		Feedback:  strings.TrimSpace(payload.Feedback),
		Category:  category,
	})

	log.Printf("[feedback] received rating=%d category=%s session=%s", payload.Rating, category, payload.SessionID)
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Thank you for your feedback!",
	})
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.store.Stats())
}
