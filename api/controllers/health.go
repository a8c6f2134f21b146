package controllers

import (
	"net/http"

	"github.com/cyberraf/giftyy-backend/api/responses"
	"github.com/cyberraf/giftyy-backend/pkg/config"
	"github.com/cyberraf/giftyy-backend/pkg/db"
	pkgerrors "github.com/cyberraf/giftyy-backend/pkg/errors"
	"github.com/cyberraf/giftyy-backend/pkg/logger"
	"github.com/cyberraf/giftyy-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Giftyy-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports readiness of the API's backing services. Redis is
// optional; when it is not wired the check covers the database only.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Giftyy-Env", cfg.App.Env)

		checks := map[string]string{}

		if dbP != nil {
			if err := dbP.Ping(r.Context()); err != nil {
				checks["database"] = "down"
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database not ready").WithDetails(checks))
				return
			}
			checks["database"] = "up"
		}

		if redisP != nil {
			if err := redisP.Ping(r.Context()); err != nil {
				checks["redis"] = "down"
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis not ready").WithDetails(checks))
				return
			}
			checks["redis"] = "up"
		}

		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
