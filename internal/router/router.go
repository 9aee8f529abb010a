package router

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kwameadu/doc-studio-api/internal/handlers"
	"github.com/kwameadu/doc-studio-api/internal/middleware"
	"github.com/kwameadu/doc-studio-api/internal/models"
	"github.com/kwameadu/doc-studio-api/internal/services"
	"github.com/kwameadu/doc-studio-api/internal/utils"
)

// Deps bundles everything the HTTP surface needs.
type Deps struct {
	Documents services.DocumentService
	Outlines  services.OutlineService
	Files     services.FileService
	Chat      services.ChatService
	Images    services.ImageService

	Logger      *utils.Logger
	Model       string
	MaxFileSize int64
}

func NewRouter(deps Deps) http.Handler {
	r := mux.NewRouter()

	// Middlewares
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Recovery(deps.Logger))

	docHandler := handlers.NewDocumentHandler(deps.Documents, deps.Logger, deps.MaxFileSize)
	outlineHandler := handlers.NewOutlineHandler(deps.Outlines, deps.Logger)
	fileHandler := handlers.NewFileHandler(deps.Files, deps.Logger)
	chatHandler := handlers.NewChatHandler(deps.Chat, deps.Logger)
	imageHandler := handlers.NewImageHandler(deps.Images, deps.Logger)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.HealthResponse{Status: "healthy", Model: deps.Model})
	}).Methods(http.MethodGet)

	// Document endpoints
	api.HandleFunc("/documents/upload", docHandler.Upload).Methods(http.MethodPost)

	// Outline endpoints
	api.HandleFunc("/outlines", outlineHandler.Generate).Methods(http.MethodPost)
	api.HandleFunc("/outlines/refine", outlineHandler.Refine).Methods(http.MethodPost)

	// File generation and download
	api.HandleFunc("/files/slides", fileHandler.GenerateSlides).Methods(http.MethodPost)
	api.HandleFunc("/files/document", fileHandler.GenerateDocument).Methods(http.MethodPost)
	api.HandleFunc("/files/summary", fileHandler.SummaryFile).Methods(http.MethodPost)
	api.HandleFunc("/files/{key}", fileHandler.Download).Methods(http.MethodGet)

	// Chat
	api.HandleFunc("/chat", chatHandler.Send).Methods(http.MethodPost)

	// Image generation
	api.HandleFunc("/images", imageHandler.Generate).Methods(http.MethodPost)

	return r
}
