package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/0xshariq/ai-powered-chatbot/docs"
	"github.com/0xshariq/ai-powered-chatbot/internal/config"
	"github.com/0xshariq/ai-powered-chatbot/internal/ws"
)

// NewRouter builds the application router. Generation endpoints are excluded
// from the request timeout middleware because the upstream gateway can take
// minutes to answer.
func NewRouter(chatHandler *ChatHandler, wsHub *ws.Hub, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Fast metadata endpoints.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))

			r.Get("/chats", chatHandler.HandleGetChats)
			r.Get("/chats/search", chatHandler.HandleSearchChats)
			r.Post("/chats/prune", chatHandler.HandlePruneHistory)
			r.Get("/chats/{chatID}", chatHandler.HandleGetChat)
			r.Post("/chats/{chatID}/select", chatHandler.HandleSelectChat)
			r.Delete("/chats/{chatID}", chatHandler.HandleDeleteChat)
			r.Post("/chats/{chatID}/messages/{messageID}/feedback", chatHandler.HandleToggleFeedback)
			r.Post("/sidebar/toggle", chatHandler.HandleToggleSidebar)
			r.Post("/upload", chatHandler.HandleUpload)
		})

		// Generation endpoints run without a timeout.
		r.Group(func(r chi.Router) {
			r.Post("/chats/messages", chatHandler.HandleSubmitMessage)
			r.Post("/analyze", chatHandler.HandleAnalyzeFile)
		})
	})

	r.Get("/ws", wsHub.HandleWS)

	uploads := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir)))
	r.Get("/uploads/*", uploads.ServeHTTP)

	return r
}
