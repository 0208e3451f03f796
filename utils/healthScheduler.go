package utils

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"learnhub/logger"
)

// HealthTarget is what the scheduler probes (satisfied by the gateway)
type HealthTarget interface {
	Backend() string
	Ping(ctx context.Context) error
}

// StartHealthScheduler probes the configured backend every five minutes and
// logs whether the process is serving live or mock data. Observability
// only; the gateway's per-call fallback does not depend on it.
func StartHealthScheduler(target HealthTarget) *cron.Cron {
	c := cron.New()
	probe := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := target.Ping(ctx); err != nil {
			logger.Warnf("health: backend %q unreachable (%v), reads will fall back to mock data", target.Backend(), err)
			return
		}
		logger.Infof("health: backend %q reachable", target.Backend())
	}
	_, _ = c.AddFunc("@every 5m", probe)
	c.Start()
	probe()
	return c
}
