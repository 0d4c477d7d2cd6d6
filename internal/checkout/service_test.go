package checkout

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/calabarlabs/storefront-backend/internal/cart"
	"github.com/calabarlabs/storefront-backend/internal/catalog"
	"github.com/calabarlabs/storefront-backend/internal/orders"
	"github.com/calabarlabs/storefront-backend/pkg/errors"
)

type stubSubmitter struct {
	err   error
	calls int
	last  orders.Order
}

func (s *stubSubmitter) Submit(_ context.Context, order orders.Order) error {
	s.calls++
	s.last = order
	return s.err
}

func (s *stubSubmitter) Name() string { return "stub" }

func testCart() cart.Lines {
	return cart.Lines{}.
		Add(catalog.Product{ID: "1", Name: "Classic Snapback", Price: 45000}).
		Add(catalog.Product{ID: "1", Name: "Classic Snapback", Price: 45000}).
		Add(catalog.Product{ID: "2", Name: "Heritage Beanie", Price: 35000})
}

func newTestService(t *testing.T, sub orders.Submitter) *Service {
	t.Helper()
	svc, err := NewService(testCheckoutConfig(), sub, false, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	svc.now = func() time.Time { return testNow }
	return svc
}

func driveToPayment(t *testing.T, svc *Service, sessionID string) {
	t.Helper()
	svc.UpdateShipping(sessionID, validShipping())
	if w := svc.Next(sessionID); w.Stage != StageBilling {
		t.Fatalf("expected billing, got %+v", w)
	}
	svc.Next(sessionID) // billing, sameAsShipping
	if w := svc.Next(sessionID); w.Stage != StagePayment {
		t.Fatalf("expected payment, got %+v", w)
	}
}

func TestServiceRequiresSubmitter(t *testing.T) {
	t.Parallel()

	if _, err := NewService(testCheckoutConfig(), nil, false, nil, nil); err == nil {
		t.Fatal("expected error for missing submitter")
	}
}

func TestServiceWizardsAreSessionScoped(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubSubmitter{})
	svc.UpdateShipping("alpha", validShipping())
	svc.Next("alpha")

	if w := svc.Wizard("alpha"); w.Stage != StageBilling {
		t.Fatalf("expected alpha at billing, got %+v", w)
	}
	if w := svc.Wizard("beta"); w.Stage != StageShipping {
		t.Fatalf("expected fresh wizard for beta, got %+v", w)
	}
}

func TestServiceSubmitOutsidePaymentStage(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubSubmitter{})
	_, _, err := svc.Submit(context.Background(), "sess", testCart())
	coded := errors.As(err)
	if coded == nil || coded.Code() != errors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
}

func TestServiceSubmitEmptyCart(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubSubmitter{})
	driveToPayment(t, svc, "sess")

	_, _, err := svc.Submit(context.Background(), "sess", cart.Lines{})
	coded := errors.As(err)
	if coded == nil || coded.Code() != errors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
}

func TestServiceSubmitBlocksOnInvalidPayment(t *testing.T) {
	t.Parallel()

	sub := &stubSubmitter{}
	svc := newTestService(t, sub)
	driveToPayment(t, svc, "sess")

	w, receipt, err := svc.Submit(context.Background(), "sess", testCart())
	if err != nil {
		t.Fatalf("validation failures must not be transport errors: %v", err)
	}
	if receipt != nil {
		t.Fatalf("expected no receipt, got %+v", receipt)
	}
	if w.Error != "Cardholder name is required" {
		t.Fatalf("unexpected error message %q", w.Error)
	}
	if sub.calls != 0 {
		t.Fatalf("submitter must not run on failed validation, got %d calls", sub.calls)
	}
}

func TestServiceSubmitSuccess(t *testing.T) {
	t.Parallel()

	sub := &stubSubmitter{}
	svc := newTestService(t, sub)
	driveToPayment(t, svc, "sess")
	svc.UpdatePayment("sess", validPayment())

	lines := testCart()
	w, receipt, err := svc.Submit(context.Background(), "sess", lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if receipt == nil || !receipt.Closed {
		t.Fatalf("expected closing receipt, got %+v", receipt)
	}
	if !strings.HasPrefix(receipt.Reference, "ORD-") {
		t.Fatalf("unexpected reference %q", receipt.Reference)
	}
	wantTotal := int64(125000 + 5000 + 9375)
	if receipt.Total != wantTotal {
		t.Fatalf("total = %d, want %d", receipt.Total, wantTotal)
	}

	if w.Stage != StageShipping || w.Error != "" {
		t.Fatalf("expected reset wizard, got %+v", w)
	}
	if fresh := svc.Wizard("sess"); fresh.Shipping.FirstName != "" {
		t.Fatalf("expected cleared form state, got %+v", fresh.Shipping)
	}

	if sub.calls != 1 {
		t.Fatalf("expected one submission, got %d", sub.calls)
	}
	if sub.last.PaymentToken != orders.PaymentTokenPlaceholder {
		t.Fatalf("raw card data must never ship; token = %q", sub.last.PaymentToken)
	}
	if len(sub.last.Items) != 2 || sub.last.Items[0].Quantity != 2 {
		t.Fatalf("unexpected items %+v", sub.last.Items)
	}
	if sub.last.BillingInfo != sub.last.ShippingInfo {
		t.Fatalf("sameAsShipping must bill the shipping address")
	}
}

func TestServiceSubmitUsesBillingAddressWhenDifferent(t *testing.T) {
	t.Parallel()

	sub := &stubSubmitter{}
	svc := newTestService(t, sub)
	svc.UpdateShipping("sess", validShipping())
	svc.Next("sess")
	svc.UpdateBilling("sess", BillingInfo{
		SameAsShipping: false,
		FirstName:      "Bola",
		LastName:       "Ade",
		Address:        "7 Allen Avenue",
		City:           "Ikeja",
		State:          "Lagos",
		Postal:         "100001",
		Country:        "Nigeria",
	})
	svc.Next("sess")
	svc.Next("sess")
	svc.UpdatePayment("sess", validPayment())

	_, receipt, err := svc.Submit(context.Background(), "sess", testCart())
	if err != nil || receipt == nil {
		t.Fatalf("unexpected outcome: %v %+v", err, receipt)
	}
	if sub.last.BillingInfo.FirstName != "Bola" || sub.last.BillingInfo.City != "Ikeja" {
		t.Fatalf("expected explicit billing address, got %+v", sub.last.BillingInfo)
	}
	if sub.last.BillingInfo.Email != "" {
		t.Fatalf("billing contact must not carry an email, got %q", sub.last.BillingInfo.Email)
	}
}

func TestServiceSubmitFailureIsRetryable(t *testing.T) {
	t.Parallel()

	sub := &stubSubmitter{err: fmt.Errorf("broker down")}
	svc := newTestService(t, sub)
	driveToPayment(t, svc, "sess")
	svc.UpdatePayment("sess", validPayment())

	w, receipt, err := svc.Submit(context.Background(), "sess", testCart())
	coded := errors.As(err)
	if coded == nil || coded.Code() != errors.CodeSubmission {
		t.Fatalf("expected submission error, got %v", err)
	}
	if receipt != nil {
		t.Fatalf("expected no receipt on failure, got %+v", receipt)
	}
	if w.Stage != StagePayment {
		t.Fatalf("failed submission must stay at payment, got %+v", w)
	}
	if w.Error != "Payment failed. Please try again." {
		t.Fatalf("unexpected error message %q", w.Error)
	}

	// Retry succeeds once the submitter recovers.
	sub.err = nil
	_, receipt, err = svc.Submit(context.Background(), "sess", testCart())
	if err != nil || receipt == nil {
		t.Fatalf("expected successful retry, got %v %+v", err, receipt)
	}
}
