package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mikepica/Scorecard-app-sub001/api/controllers"
	"github.com/mikepica/Scorecard-app-sub001/api/middleware"
	"github.com/mikepica/Scorecard-app-sub001/api/responses"
	"github.com/mikepica/Scorecard-app-sub001/internal/alignments"
	"github.com/mikepica/Scorecard-app-sub001/pkg/config"
	"github.com/mikepica/Scorecard-app-sub001/pkg/db"
	pkgerrors "github.com/mikepica/Scorecard-app-sub001/pkg/errors"
	"github.com/mikepica/Scorecard-app-sub001/pkg/logger"
	"github.com/mikepica/Scorecard-app-sub001/pkg/metrics"
)

// Params carries everything the router wires. Gatherer and HTTPMetrics may be
// nil, in which case /metrics is not mounted and requests are not counted.
type Params struct {
	Config            *config.Config
	Logger            *logger.Logger
	DB                db.Pinger
	AlignmentsService alignments.Service
	HTTPMetrics       *metrics.HTTPMetrics
	Gatherer          prometheus.Gatherer
}

func NewRouter(p Params) http.Handler {
	cfg, logg := p.Config, p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(p.HTTPMetrics),
	)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteError(req.Context(), nil, w, pkgerrors.New(pkgerrors.CodeNotFound, "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteError(req.Context(), nil, w, pkgerrors.New(pkgerrors.CodeMethodNotAllowed, "method not allowed"))
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, p.DB))
	})

	if cfg.Metrics.Enabled && p.Gatherer != nil {
		r.Method(http.MethodGet, cfg.Metrics.Path, metrics.Handler(p.Gatherer))
	}

	r.Route("/api/alignments", func(r chi.Router) {
		r.Get("/unaligned", controllers.UnalignedItems(p.AlignmentsService, logg))
	})

	return r
}
