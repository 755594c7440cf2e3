package chat

import (
	"encoding/json"
	"log"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Anshulmehra001/plantpal/backend/internal/analysis/sentiment"
	"github.com/Anshulmehra001/plantpal/backend/internal/config"
	chatmodel "github.com/Anshulmehra001/plantpal/backend/internal/model/chat"
	"github.com/Anshulmehra001/plantpal/backend/internal/model/resources"
	aiservice "github.com/Anshulmehra001/plantpal/backend/internal/service/ai"
	chatservice "github.com/Anshulmehra001/plantpal/backend/internal/service/chat"
	"github.com/Anshulmehra001/plantpal/backend/internal/service/session"
	"github.com/Anshulmehra001/plantpal/backend/pkg/utils"
)

// safeErrorResponse is returned on processing failures so the client
// always has something supportive to show.
const safeErrorResponse = "I'm having some technical difficulties. Please try again, and remember " +
	"that if you need immediate support, please reach out to a trusted person or helpline."

// crisisCountWindow bounds how far back the crisis recommendation
// looks when assembling session analytics.
const crisisCountWindow = 24 * time.Hour

// Handler serves the chat API: message processing, session retrieval
// and the admin session endpoints.
type Handler struct {
	store *session.Store
	aiSvc *aiservice.Service
	cfg   config.ChatConfig

	rngMu sync.Mutex
	rng   *rand.Rand
}

func New(store *session.Store, aiSvc *aiservice.Service, cfg config.ChatConfig) *Handler {
	return &Handler{
		store: store,
		aiSvc: aiSvc,
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat/message", h.handleMessage)
	r.Get("/chat/session/{sessionID}", h.handleGetSession)
	r.Delete("/chat/session/{sessionID}", h.handleDeleteSession)
	r.Get("/chat/sessions/stats", h.handleStats)
	r.Post("/chat/sessions/cleanup", h.handleCleanup)
	r.Get("/chat/health", h.handleHealth)
}

// handleMessage runs the full pipeline for one user turn: validation,
// classification, crisis override or model generation, and session
// bookkeeping.
func (h *Handler) handleMessage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var payload struct {
		Message   json.RawMessage `json:"message"`
		SessionID string          `json:"sessionId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondErrorCode(w, http.StatusBadRequest, "INVALID_MESSAGE_TYPE", "invalid request body")
		return
	}

	message, code, errMsg := h.validateMessage(payload.Message)
	if code != "" {
		if code == "MESSAGE_TOO_LONG" {
			utils.RespondJSON(w, http.StatusBadRequest, map[string]any{
				"error":         errMsg,
				"code":          code,
				"maxLength":     h.cfg.MaxMessageLength,
				"currentLength": utf8.RuneCountInString(message),
				"timestamp":     time.Now().UTC().Format(time.RFC3339),
			})
			return
		}
		utils.RespondErrorCode(w, http.StatusBadRequest, code, errMsg)
		return
	}

	sessionID := payload.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[chat] panic processing message for session=%s: %v", sessionID, rec)
			utils.RespondJSON(w, http.StatusInternalServerError, map[string]any{
				"error":     "Failed to process message",
				"code":      "PROCESSING_ERROR",
				"response":  safeErrorResponse,
				"sessionId": sessionID,
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		}
	}()

	result := sentiment.Classify(message)
	now := time.Now().UTC()

	snapshot := h.store.RecordUserMessage(sessionID, chatmodel.Message{
		Role:      chatmodel.RoleUser,
		Content:   message,
		Timestamp: now,
		Mood:      string(result.Mood),
		Topics:    result.Topics,
	}, sentiment.Record{
		Score:          result.Score,
		Mood:           result.Mood,
		Topics:         result.Topics,
		CrisisDetected: result.CrisisDetected,
		Timestamp:      now,
	})

	var (
		response       string
		copingStrategy string
		crisisPayload  any
	)

	if result.CrisisDetected {
		// Fixed supportive response; the model is never consulted here.
		response = resources.CrisisMessage
		crisisPayload = resources.Crisis()
		log.Printf("[chat] crisis detected for session=%s, intervention triggered", sessionID)
	} else {
		convCtx := chatservice.BuildContext(snapshot.Messages)
		response = h.aiSvc.Generate(r.Context(), sessionID, message, result, convCtx)
		copingStrategy = h.pickCopingStrategy(message)
	}

	h.store.RecordAssistantMessage(sessionID, chatmodel.Message{
		Role:           chatmodel.RoleAssistant,
		Content:        response,
		Timestamp:      time.Now().UTC(),
		CopingStrategy: copingStrategy,
		Resources:      result.CrisisDetected,
	})

	log.Printf("[chat] message processed for session=%s sentiment=%s crisis=%t in %s",
		sessionID, result.Mood, result.CrisisDetected, time.Since(start))

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"response":       response,
		"sessionId":      sessionID,
		"copingStrategy": emptyAsNil(copingStrategy),
		"resources":      crisisPayload,
		"isCrisis":       result.CrisisDetected,
		"sentiment":      result.Mood,
		"topics":         result.Topics,
		"confidence":     result.Confidence,
		"plant":          sentiment.PlantEffectFor(result.Mood),
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
		"processingTime": time.Since(start).Milliseconds(),
	})
}

// validateMessage checks the raw message field and returns the trimmed
// text, or an error code and message when the input is rejected.
func (h *Handler) validateMessage(raw json.RawMessage) (string, string, string) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", "MISSING_MESSAGE", "Message is required"
	}

	var message string
	if err := json.Unmarshal(raw, &message); err != nil {
		return "", "INVALID_MESSAGE_TYPE", "Message must be a string"
	}

	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return "", "EMPTY_MESSAGE", "Message cannot be empty"
	}
	if utf8.RuneCountInString(trimmed) > h.cfg.MaxMessageLength {
		return trimmed, "MESSAGE_TOO_LONG",
			"Message too long. Please keep it under " + strconv.Itoa(h.cfg.MaxMessageLength) + " characters."
	}

	return trimmed, "", ""
}

func (h *Handler) pickCopingStrategy(message string) string {
	h.rngMu.Lock()
	defer h.rngMu.Unlock()
	return resources.PickCopingStrategy(message, h.rng)
}

// handleGetSession returns the paginated message log plus derived
// session analytics.
func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := strings.TrimSpace(chi.URLParam(r, "sessionID"))
	if sessionID == "" {
		utils.RespondErrorCode(w, http.StatusBadRequest, "INVALID_SESSION_ID", "Valid session ID is required")
		return
	}

	limit := clamp(parseIntQuery(r, "limit", 20), 1, 50)
	offset := parseIntQuery(r, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	sess, err := h.store.Get(sessionID)
	if err != nil {
		utils.RespondErrorCode(w, http.StatusNotFound, "SESSION_NOT_FOUND", "Session not found")
		return
	}

	total := len(sess.Messages)
	end := total - offset
	if end < 0 {
		end = 0
	}
	startIdx := end - limit
	if startIdx < 0 {
		startIdx = 0
	}
	paginated := sess.Messages[startIdx:end]

	now := time.Now().UTC()
	sinceActivity := now.Sub(sess.LastActivity)

	pattern := h.store.Pattern(sessionID)
	crisisCount := h.store.CrisisCount(sessionID, crisisCountWindow)

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"sessionId": sessionID,
		"messages":  paginated,
		"pagination": map[string]any{
			"total":   total,
			"limit":   limit,
			"offset":  offset,
			"hasMore": startIdx > 0,
		},
		"sessionInfo": map[string]any{
			"createdAt":             sess.CreatedAt,
			"lastActivity":          sess.LastActivity,
			"sessionDuration":       now.Sub(sess.CreatedAt).Milliseconds(),
			"timeSinceLastActivity": sinceActivity.Milliseconds(),
			"isActive":              sinceActivity < h.cfg.ActiveWindow,
		},
		"analytics": map[string]any{
			"totalMessages":         sess.Analytics.TotalMessages,
			"crisisDetected":        sess.Analytics.CrisisDetected,
			"resourcesAccessed":     sess.Analytics.ResourcesAccessed,
			"averageMessageLength":  averageMessageLength(sess.Messages),
			"sentimentDistribution": sentimentDistribution(sess.Messages),
			"topicDistribution":     topicDistribution(sess.Messages),
			"pattern":               pattern,
			"recommendations":       sentiment.Recommendations(pattern, crisisCount),
		},
		"timestamp": now.Format(time.RFC3339),
	})
}

func (h *Handler) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := strings.TrimSpace(chi.URLParam(r, "sessionID"))
	if sessionID == "" {
		utils.RespondErrorCode(w, http.StatusBadRequest, "INVALID_SESSION_ID", "Valid session ID is required")
		return
	}

	if err := h.store.Delete(sessionID); err != nil {
		utils.RespondErrorCode(w, http.StatusNotFound, "SESSION_NOT_FOUND", "Session not found")
		return
	}

	log.Printf("[chat] session deleted session=%s", sessionID)
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"message":   "Session deleted successfully",
		"sessionId": sessionID,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats := h.store.Stats()
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"totalSessions":             stats.TotalSessions,
		"activeSessions":            stats.ActiveSessions,
		"totalMessages":             stats.TotalMessages,
		"averageMessagesPerSession": stats.AverageMessagesPerSession,
		"oldestSessionAge":          stats.OldestSessionAgeMinutes,
		"newestSessionAge":          stats.NewestSessionAgeMinutes,
		"timestamp":                 time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) handleCleanup(w http.ResponseWriter, r *http.Request) {
	cleaned := h.store.Cleanup()
	remaining := h.store.Len()

	log.Printf("[chat] manual cleanup removed %d sessions, %d remaining", cleaned, remaining)
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"message":           "Session cleanup completed",
		"cleanedSessions":   cleaned,
		"remainingSessions": remaining,
		"timestamp":         time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	stats := h.store.Stats()
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"status":         "healthy",
		"aiEnabled":      h.aiSvc.Enabled(),
		"activeSessions": stats.ActiveSessions,
		"totalSessions":  stats.TotalSessions,
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
	})
}

func sentimentDistribution(messages []chatmodel.Message) map[string]int {
	distribution := make(map[string]int)
	for _, msg := range messages {
		if msg.Mood != "" {
			distribution[msg.Mood]++
		}
	}
	return distribution
}

func topicDistribution(messages []chatmodel.Message) map[string]int {
	distribution := make(map[string]int)
	for _, msg := range messages {
		for _, topic := range msg.Topics {
			distribution[topic]++
		}
	}
	return distribution
}

func averageMessageLength(messages []chatmodel.Message) int {
	if len(messages) == 0 {
		return 0
	}
	total := 0
	for _, msg := range messages {
		total += len(msg.Content)
	}
	return total / len(messages)
}

func parseIntQuery(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

func emptyAsNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}
