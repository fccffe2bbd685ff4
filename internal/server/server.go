package server

import (
	"context"
	"net/http"

	"github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/Tomas-vilte/MateReview/internal/logger"
	"github.com/gorilla/mux"
)

// Server expone el pipeline de reviews por HTTP.
type Server struct {
	cfg           *config.Config
	trans         *i18n.Translations
	reviewService ports.ReviewService
	router        *mux.Router
}

func New(cfg *config.Config, trans *i18n.Translations, reviewService ports.ReviewService) *Server {
	s := &Server{
		cfg:           cfg,
		trans:         trans,
		reviewService: reviewService,
	}
	s.router = s.initRouter()
	return s
}

func (s *Server) initRouter() *mux.Router {
	router := mux.NewRouter()

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/review", s.handleReview).Methods(http.MethodPost)
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	return router
}

// Router expone el handler para tests y para montar el server.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start levanta el servidor y bloquea hasta que falle el listener.
func (s *Server) Start(ctx context.Context) error {
	logger.Info(ctx, s.trans.GetMessage("server.listening", 0, map[string]interface{}{"Addr": s.cfg.ServerAddr}), "addr", s.cfg.ServerAddr)
	return http.ListenAndServe(s.cfg.ServerAddr, s.router)
}
