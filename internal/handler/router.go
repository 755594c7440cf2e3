package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Anshulmehra001/plantpal/backend/internal/config"
	chathandler "github.com/Anshulmehra001/plantpal/backend/internal/handler/chat"
	feedbackhandler "github.com/Anshulmehra001/plantpal/backend/internal/handler/feedback"
	resourceshandler "github.com/Anshulmehra001/plantpal/backend/internal/handler/resources"
	middlewarePkg "github.com/Anshulmehra001/plantpal/backend/internal/middleware"
	aiservice "github.com/Anshulmehra001/plantpal/backend/internal/service/ai"
	feedbackservice "github.com/Anshulmehra001/plantpal/backend/internal/service/feedback"
	"github.com/Anshulmehra001/plantpal/backend/internal/service/session"
	"github.com/Anshulmehra001/plantpal/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(store *session.Store, aiSvc *aiservice.Service, feedbackStore *feedbackservice.Store, cfg config.ChatConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	chatHandler := chathandler.New(store, aiSvc, cfg)
	resourcesHandler := resourceshandler.New()
	feedbackHandler := feedbackhandler.New(feedbackStore)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]any{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	r.Route("/api", func(api chi.Router) {
		chatHandler.RegisterRoutes(api)
		resourcesHandler.RegisterRoutes(api)
		feedbackHandler.RegisterRoutes(api)
	})

	return r
}
