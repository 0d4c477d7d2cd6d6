package orders

import (
	"context"
	"time"

	"github.com/calabarlabs/storefront-backend/pkg/logger"
)

// Simulated accepts every order after a fixed processing delay. It is the
// default submitter when no Pub/Sub project is configured.
type Simulated struct {
	delay time.Duration
	logg  *logger.Logger
}

func NewSimulated(delay time.Duration, logg *logger.Logger) *Simulated {
	return &Simulated{delay: delay, logg: logg}
}

func (s *Simulated) Name() string {
	return "simulated"
}

func (s *Simulated) Submit(ctx context.Context, order Order) error {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithFields(ctx, map[string]any{
			"reference": order.Reference,
			"total":     order.Total,
			"items":     len(order.Items),
		}), "simulated order accepted")
	}
	return nil
}
