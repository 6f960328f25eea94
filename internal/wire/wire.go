// internal/wire/wire.go
package wire

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"movie-reviews/internal/adaptor"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/notify"
	"movie-reviews/internal/usecase"
	"movie-reviews/internal/view"
	"movie-reviews/pkg/database"
	"movie-reviews/pkg/middleware"
	"movie-reviews/pkg/utils"
	"movie-reviews/web"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired router.
type App struct {
	Router *chi.Mux
}

// Deps are the long-lived objects created in main.
type Deps struct {
	Store  database.StoreIface
	Center *notify.Center
	Hub    *notify.Hub
}

// Wiring builds services, handlers and routes.
func Wiring(deps Deps, config *utils.Config, logger *zap.Logger) (*App, error) {
	render, err := view.NewRenderer(web.Files, logger)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	repo := repository.NewRepository(deps.Store, logger)
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, render, deps.Center, deps.Hub, logger)

	router, err := setupRouter(handler, deps.Store, config, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		Router: router,
	}, nil
}

func setupRouter(
	handler *adaptor.Handler,
	store database.StoreIface,
	config *utils.Config,
	logger *zap.Logger,
) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger, handler.Page.InternalError))
	r.Use(middleware.CurrentUser(config.Session.CurrentUserID, logger))

	// Apply routes
	wireHome(r, handler.Home)
	wireMovie(r, handler.Movie)
	wireReview(r, handler.Review, handler.Comment)
	wireFavorite(r, handler.Favorite)
	wireNotify(r, handler.Notify)

	static, err := fs.Sub(web.Files, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			logger.Warn("Health check: store unreachable", zap.Error(err))
			utils.ResponseUnavailable(w, "store unreachable", nil)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.NotFound(handler.Page.NotFound)
	r.MethodNotAllowed(handler.Page.NotFound)

	return r, nil
}

func wireHome(r chi.Router, homeHandler *adaptor.HomeHandler) {
	r.Get("/", homeHandler.Home)
}
