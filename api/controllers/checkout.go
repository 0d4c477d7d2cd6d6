package controllers

import (
	"net/http"
	"time"

	"github.com/calabarlabs/storefront-backend/api/responses"
	"github.com/calabarlabs/storefront-backend/api/validators"
	cartsvc "github.com/calabarlabs/storefront-backend/internal/cart"
	checkoutsvc "github.com/calabarlabs/storefront-backend/internal/checkout"
	"github.com/calabarlabs/storefront-backend/pkg/logger"
	"github.com/calabarlabs/storefront-backend/pkg/money"
)

type wizardResponse struct {
	checkoutsvc.Wizard
	Step      int `json:"step"`
	StepCount int `json:"stepCount"`
}

func newWizardResponse(w checkoutsvc.Wizard) wizardResponse {
	return wizardResponse{Wizard: w, Step: w.Stage.Index(), StepCount: 4}
}

type totalsResponse struct {
	checkoutsvc.Totals
	SubtotalDisplay string `json:"subtotalDisplay"`
	ShippingDisplay string `json:"shippingDisplay"`
	TaxDisplay      string `json:"taxDisplay"`
	TotalDisplay    string `json:"totalDisplay"`
}

func newTotalsResponse(t checkoutsvc.Totals) totalsResponse {
	return totalsResponse{
		Totals:          t,
		SubtotalDisplay: money.Format(t.Subtotal),
		ShippingDisplay: money.Format(t.Shipping),
		TaxDisplay:      money.Format(t.Tax),
		TotalDisplay:    money.Format(t.Total),
	}
}

// CheckoutState returns the session's wizard.
func CheckoutState(svc *checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, err := sessionIDOrError(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newWizardResponse(svc.Wizard(sid)))
	}
}

// CheckoutShipping applies a shipping form edit.
func CheckoutShipping(svc *checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, err := sessionIDOrError(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var form checkoutsvc.ShippingInfo
		if err := validators.DecodeJSONBody(r, &form); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newWizardResponse(svc.UpdateShipping(sid, form)))
	}
}

// CheckoutBilling applies a billing form edit.
func CheckoutBilling(svc *checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, err := sessionIDOrError(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var form checkoutsvc.BillingInfo
		if err := validators.DecodeJSONBody(r, &form); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newWizardResponse(svc.UpdateBilling(sid, form)))
	}
}

// CheckoutPayment applies a payment form edit with input formatting.
func CheckoutPayment(svc *checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, err := sessionIDOrError(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var form checkoutsvc.PaymentInfo
		if err := validators.DecodeJSONBody(r, &form); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newWizardResponse(svc.UpdatePayment(sid, form)))
	}
}

// CheckoutNext attempts a forward transition. A failed validation is not an
// HTTP error; the wizard comes back with its error message set.
func CheckoutNext(svc *checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, err := sessionIDOrError(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newWizardResponse(svc.Next(sid)))
	}
}

// CheckoutBack steps backward without validation.
func CheckoutBack(svc *checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, err := sessionIDOrError(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newWizardResponse(svc.Back(sid)))
	}
}

// CheckoutTotals prices the session's current cart.
func CheckoutTotals(svc *checkoutsvc.Service, carts cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, err := sessionIDOrError(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		lines, err := carts.Get(r.Context(), sid)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		totals, err := svc.Totals(lines)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newTotalsResponse(totals))
	}
}

// CheckoutExpiryOptions serves the month and year select option sets.
func CheckoutExpiryOptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{
			"months": checkoutsvc.ExpiryMonths(),
			"years":  checkoutsvc.ExpiryYears(time.Now()),
		})
	}
}

type submitResponse struct {
	Wizard  wizardResponse       `json:"wizard"`
	Receipt *checkoutsvc.Receipt `json:"receipt,omitempty"`
}

// CheckoutSubmit validates payment and places the order. On success the
// reset wizard plus a closing receipt come back; the cart itself is left to
// the client to clear or keep.
func CheckoutSubmit(svc *checkoutsvc.Service, carts cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, err := sessionIDOrError(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lines, err := carts.Get(r.Context(), sid)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		wizard, receipt, err := svc.Submit(r.Context(), sid, lines)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, submitResponse{Wizard: newWizardResponse(wizard), Receipt: receipt})
	}
}
