package controllers

import (
	"context"
	"net/http"

	"github.com/calabarlabs/storefront-backend/api/responses"
	"github.com/calabarlabs/storefront-backend/pkg/config"
	"github.com/calabarlabs/storefront-backend/pkg/logger"
)

type pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Calabar-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports per-dependency status. Nil pingers are backends the
// deployment does not use and are reported as skipped.
func HealthReady(cfg *config.Config, logg *logger.Logger, storeP, redisP, pubsubP pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Calabar-Env", cfg.App.Env)

		checks := map[string]string{}
		ready := true
		for name, p := range map[string]pinger{
			"storage": storeP,
			"redis":   redisP,
			"pubsub":  pubsubP,
		} {
			if p == nil {
				checks[name] = "skipped"
				continue
			}
			if err := p.Ping(r.Context()); err != nil {
				checks[name] = "down"
				ready = false
				if logg != nil {
					logg.Error(logg.WithField(r.Context(), "dependency", name), "readiness check failed", err)
				}
				continue
			}
			checks[name] = "up"
		}

		status := "ready"
		code := http.StatusOK
		if !ready {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
		responses.WriteSuccessStatus(w, code, map[string]any{"status": status, "checks": checks})
	}
}
