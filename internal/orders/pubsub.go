package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	gcppubsub "cloud.google.com/go/pubsub/v2"
	"github.com/calabarlabs/storefront-backend/pkg/logger"
)

const defaultPublishTimeout = 30 * time.Second

type publishResult interface {
	Get(ctx context.Context) (string, error)
}

type publisher interface {
	Publish(context.Context, *gcppubsub.Message) publishResult
}

// PubSub publishes each order as a JSON message on the orders topic. This is
// the real backend integration point; downstream consumers own persistence
// and fulfilment.
type PubSub struct {
	pub  publisher
	logg *logger.Logger
}

func NewPubSub(pub *gcppubsub.Publisher, logg *logger.Logger) (*PubSub, error) {
	wrapped := newGCPPublisher(pub)
	if wrapped == nil {
		return nil, errors.New("orders publisher is required")
	}
	return &PubSub{pub: wrapped, logg: logg}, nil
}

func (p *PubSub) Name() string {
	return "pubsub"
}

func (p *PubSub) Submit(ctx context.Context, order Order) error {
	msg, err := buildMessage(order)
	if err != nil {
		return err
	}

	publishCtx, cancel := context.WithTimeout(ctx, defaultPublishTimeout)
	defer cancel()

	result := p.pub.Publish(publishCtx, msg)
	if result == nil {
		return errors.New("publisher returned nil result")
	}
	id, err := result.Get(publishCtx)
	if err != nil {
		return fmt.Errorf("publishing order %s: %w", order.Reference, err)
	}

	if p.logg != nil {
		p.logg.Info(p.logg.WithFields(ctx, map[string]any{
			"reference":  order.Reference,
			"message_id": id,
		}), "order published")
	}
	return nil
}

func buildMessage(order Order) (*gcppubsub.Message, error) {
	payload, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("encoding order %s: %w", order.Reference, err)
	}
	return &gcppubsub.Message{
		Data: payload,
		Attributes: map[string]string{
			"reference": order.Reference,
			"total":     fmt.Sprintf("%d", order.Total),
		},
	}, nil
}

func newGCPPublisher(p *gcppubsub.Publisher) publisher {
	if p == nil {
		return nil
	}
	return &gcpPublisher{Publisher: p}
}

type gcpPublisher struct {
	*gcppubsub.Publisher
}

func (p *gcpPublisher) Publish(ctx context.Context, msg *gcppubsub.Message) publishResult {
	if p == nil || p.Publisher == nil {
		return nil
	}
	return &gcpPublishResult{PublishResult: p.Publisher.Publish(ctx, msg)}
}

type gcpPublishResult struct {
	*gcppubsub.PublishResult
}

func (r *gcpPublishResult) Get(ctx context.Context) (string, error) {
	if r == nil || r.PublishResult == nil {
		return "", errors.New("publish result is nil")
	}
	return r.PublishResult.Get(ctx)
}
