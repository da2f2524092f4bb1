// Package server exposes the interest-capture subsystem over HTTP. Each
// route corresponds to one UI event of the promotional site.
package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"interest-capture/internal/catalog"
	"interest-capture/internal/common/config"
	"interest-capture/internal/common/logger"
	"interest-capture/internal/common/observability"
	"interest-capture/internal/fallback"
	"interest-capture/internal/notify"
	"interest-capture/internal/submission"
	"interest-capture/internal/ui/modal"
	"interest-capture/internal/ui/navigator"
)

type Server struct {
	cfg       *config.Config
	catalog   *catalog.Catalog
	contact   *submission.Machine
	modal     *modal.Controller
	navigator *navigator.Navigator
	obs       *observability.Observability
	logger    logger.Logger
	router    *mux.Router
}

// New wires the two submission surfaces, the modal controller and the
// navigator around a shared notifier and resolver.
func New(cfg *config.Config, cat *catalog.Catalog, notifier notify.Notifier, obs *observability.Observability, log logger.Logger) *Server {
	resolver := fallback.NewResolver(cfg.Fallback, cat)

	s := &Server{
		cfg:     cfg,
		catalog: cat,
		contact: submission.NewMachine(SurfaceContact, notifier, resolver, log),
		modal: modal.NewController(
			submission.NewMachine(SurfaceModal, notifier, resolver, log),
			log,
		),
		navigator: navigator.New(
			cfg.UI.Sections,
			config.GetDuration(cfg.UI.HighlightDuration),
			navigator.NopScroller{},
			log,
		),
		obs:    obs,
		logger: log.WithFields(map[string]interface{}{"component": "server"}),
	}

	s.router = s.routes()
	return s
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/catalog", s.handleCatalog).Methods(http.MethodGet)
	api.HandleFunc("/modal", s.handleModalState).Methods(http.MethodGet)
	api.HandleFunc("/modal/open", s.handleModalOpen).Methods(http.MethodPost)
	api.HandleFunc("/modal/close", s.handleModalClose).Methods(http.MethodPost)
	api.HandleFunc("/modal/submit", s.handleModalSubmit).Methods(http.MethodPost)
	api.HandleFunc("/contact", s.handleContact).Methods(http.MethodPost)
	api.HandleFunc("/sections/{id}/focus", s.handleSectionFocus).Methods(http.MethodPost)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handler returns the configured router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ContactMachine exposes the contact surface's machine, mainly for tests.
func (s *Server) ContactMachine() *submission.Machine {
	return s.contact
}

// Modal exposes the modal controller, mainly for tests.
func (s *Server) Modal() *modal.Controller {
	return s.modal
}

// Navigator exposes the scroll-highlight navigator, mainly for tests.
func (s *Server) Navigator() *navigator.Navigator {
	return s.navigator
}
