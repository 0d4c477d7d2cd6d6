package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/calabarlabs/storefront-backend/internal/cart"
	"github.com/calabarlabs/storefront-backend/internal/orders"
	"github.com/calabarlabs/storefront-backend/pkg/config"
	"github.com/calabarlabs/storefront-backend/pkg/errors"
	"github.com/calabarlabs/storefront-backend/pkg/logger"
	"github.com/calabarlabs/storefront-backend/pkg/metrics"
)

// Receipt is the successful submission outcome. Closed tells the client the
// wizard has reset and should be dismissed.
type Receipt struct {
	Reference string `json:"reference"`
	Total     int64  `json:"total"`
	Closed    bool   `json:"closed"`
}

// Service owns one wizard per session. Wizard state is deliberately
// ephemeral, held in memory only; an abandoned checkout starts over while
// the cart itself survives in storage.
type Service struct {
	mu              sync.Mutex
	wizards         map[string]Wizard
	cfg             config.CheckoutConfig
	submitter       orders.Submitter
	strictLocations bool
	logg            *logger.Logger
	metrics         *metrics.StorefrontMetrics
	now             func() time.Time
}

func NewService(cfg config.CheckoutConfig, submitter orders.Submitter, strictLocations bool, logg *logger.Logger, m *metrics.StorefrontMetrics) (*Service, error) {
	if submitter == nil {
		return nil, errors.New(errors.CodeInternal, "order submitter is required")
	}
	return &Service{
		wizards:         map[string]Wizard{},
		cfg:             cfg,
		submitter:       submitter,
		strictLocations: strictLocations,
		logg:            logg,
		metrics:         m,
		now:             time.Now,
	}, nil
}

// Wizard returns the session's wizard, creating a fresh one on first use.
func (s *Service) Wizard(sessionID string) Wizard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wizardLocked(sessionID)
}

func (s *Service) wizardLocked(sessionID string) Wizard {
	w, ok := s.wizards[sessionID]
	if !ok {
		w = NewWizard()
		s.wizards[sessionID] = w
	}
	return w
}

// UpdateShipping applies a shipping form edit.
func (s *Service) UpdateShipping(sessionID string, form ShippingInfo) Wizard {
	return s.update(sessionID, func(w Wizard) Wizard { return w.SetShipping(form) })
}

// UpdateBilling applies a billing form edit.
func (s *Service) UpdateBilling(sessionID string, form BillingInfo) Wizard {
	return s.update(sessionID, func(w Wizard) Wizard { return w.SetBilling(form) })
}

// UpdatePayment applies a payment form edit with input formatting.
func (s *Service) UpdatePayment(sessionID string, form PaymentInfo) Wizard {
	return s.update(sessionID, func(w Wizard) Wizard { return w.SetPayment(form) })
}

// Next attempts a forward transition.
func (s *Service) Next(sessionID string) Wizard {
	return s.update(sessionID, func(w Wizard) Wizard { return w.Next(s.strictLocations, s.now()) })
}

// Back steps backward without validating.
func (s *Service) Back(sessionID string) Wizard {
	return s.update(sessionID, func(w Wizard) Wizard { return w.Back() })
}

func (s *Service) update(sessionID string, fn func(Wizard) Wizard) Wizard {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := fn(s.wizardLocked(sessionID))
	s.wizards[sessionID] = w
	return w
}

// Totals prices the cart under the configured policy.
func (s *Service) Totals(lines cart.Lines) (Totals, error) {
	totals, err := CalculateTotals(lines.Subtotal(), s.cfg)
	if err != nil {
		return Totals{}, errors.Wrap(errors.CodeInternal, err, "calculating totals")
	}
	return totals, nil
}

// Submit validates the payment stage and hands the order to the submitter.
// On success the wizard resets to shipping and the receipt signals closure;
// a failed validation returns the wizard with its error set and no receipt.
func (s *Service) Submit(ctx context.Context, sessionID string, lines cart.Lines) (Wizard, *Receipt, error) {
	s.mu.Lock()
	w := s.wizardLocked(sessionID)
	s.mu.Unlock()

	if w.Stage != StagePayment {
		return w, nil, errors.New(errors.CodeStateConflict, "submission is only available from the payment stage")
	}
	if len(lines) == 0 {
		return w, nil, errors.New(errors.CodeStateConflict, "cannot submit an empty cart")
	}

	if msg := ValidatePayment(w.Payment, s.now()); msg != "" {
		w.Error = msg
		s.store(sessionID, w)
		return w, nil, nil
	}
	w.Error = ""
	s.store(sessionID, w)

	totals, err := s.Totals(lines)
	if err != nil {
		return w, nil, err
	}

	order := s.buildOrder(w, lines, totals)
	submitCtx := ctx
	if s.logg != nil {
		submitCtx = s.logg.WithFields(ctx, map[string]any{
			"reference": order.Reference,
			"submitter": s.submitter.Name(),
		})
	}

	start := s.now()
	submitErr := s.submitter.Submit(submitCtx, order)
	s.metrics.ObserveSubmitDuration(s.submitter.Name(), s.now().Sub(start))

	if submitErr != nil {
		s.metrics.IncSubmitFailure(s.submitter.Name())
		if s.logg != nil {
			s.logg.Error(submitCtx, "order submission failed", submitErr)
		}
		w.Error = "Payment failed. Please try again."
		s.store(sessionID, w)
		return w, nil, errors.Wrap(errors.CodeSubmission, submitErr, "submitting order")
	}

	s.metrics.IncSubmitSuccess(s.submitter.Name())
	if s.logg != nil {
		s.logg.Info(submitCtx, "order placed")
	}

	reset := NewWizard()
	s.store(sessionID, reset)
	return reset, &Receipt{Reference: order.Reference, Total: totals.Total, Closed: true}, nil
}

func (s *Service) store(sessionID string, w Wizard) {
	s.mu.Lock()
	s.wizards[sessionID] = w
	s.mu.Unlock()
}

func (s *Service) buildOrder(w Wizard, lines cart.Lines, totals Totals) orders.Order {
	shippingContact := orders.Contact{
		FirstName: w.Shipping.FirstName,
		LastName:  w.Shipping.LastName,
		Email:     w.Shipping.Email,
		Phone:     w.Shipping.Phone,
		Address:   w.Shipping.Address,
		City:      w.Shipping.City,
		State:     w.Shipping.State,
		Postal:    w.Shipping.Postal,
		Country:   w.Shipping.Country,
	}
	billingContact := shippingContact
	if !w.Billing.SameAsShipping {
		billingContact = orders.Contact{
			FirstName: w.Billing.FirstName,
			LastName:  w.Billing.LastName,
			Address:   w.Billing.Address,
			City:      w.Billing.City,
			State:     w.Billing.State,
			Postal:    w.Billing.Postal,
			Country:   w.Billing.Country,
		}
	}

	items := make([]orders.Item, 0, len(lines))
	for _, line := range lines {
		items = append(items, orders.Item{
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			Quantity:    line.Quantity,
			Price:       line.Product.Price,
		})
	}

	return orders.Order{
		Reference:    orders.NewReference(s.now()),
		ShippingInfo: shippingContact,
		BillingInfo:  billingContact,
		Items:        items,
		Subtotal:     totals.Subtotal,
		Shipping:     totals.Shipping,
		Tax:          totals.Tax,
		Total:        totals.Total,
		PaymentToken: orders.PaymentTokenPlaceholder,
	}
}
