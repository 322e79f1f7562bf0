package handlers

import (
	"Cepte/internal/config"
	"Cepte/internal/middleware"
	"Cepte/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	docService *service.DocumentService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	storeHandler := NewStoreHandler(docService, logger)

	// User routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)
	r.Post("/api/user/logout", userHandler.Logout)
	r.Get("/api/user/profile", userHandler.GetProfile)
	r.Put("/api/user/profile", userHandler.PutProfile)

	// Document store routes: users/{uid}/{collection}/{docID},
	// uid всегда берётся из auth-cookie
	r.Put("/api/store/{collection}/{docID}", storeHandler.Put)
	r.Delete("/api/store/{collection}/{docID}", storeHandler.Delete)
	r.Get("/api/store/{collection}", storeHandler.List)

	return &Handler{Router: r}
}
