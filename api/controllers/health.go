package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/mikepica/Scorecard-app-sub001/api/responses"
	"github.com/mikepica/Scorecard-app-sub001/pkg/config"
	"github.com/mikepica/Scorecard-app-sub001/pkg/db"
	pkgerrors "github.com/mikepica/Scorecard-app-sub001/pkg/errors"
	"github.com/mikepica/Scorecard-app-sub001/pkg/logger"
)

const envHeader = "X-Scorecard-Env"

const readyPingTimeout = 2 * time.Second

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only when the database answers a ping.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		if dbP == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeDependency, "database not configured"))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), readyPingTimeout)
		defer cancel()
		if err := dbP.Ping(ctx); err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unreachable").
					WithDetails(map[string]string{"dependency": "database"}))
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
