package checkout

import "time"

// Stage is the wizard's position. Transitions are strictly forward through
// validation or backward without it.
type Stage string

const (
	StageShipping Stage = "shipping"
	StageBilling  Stage = "billing"
	StageReview   Stage = "review"
	StagePayment  Stage = "payment"
)

var stageOrder = []Stage{StageShipping, StageBilling, StageReview, StagePayment}

// Index is the 1-based step number, for the "Step N of 4" indicator. Unknown
// stages report 0.
func (s Stage) Index() int {
	for i, stage := range stageOrder {
		if stage == s {
			return i + 1
		}
	}
	return 0
}

func (s Stage) Valid() bool {
	return s.Index() > 0
}

// Wizard is one session's checkout state. At most one error message is held
// at a time; it clears on stage entry and on passing validation. Form state
// survives backward navigation.
type Wizard struct {
	Stage    Stage        `json:"stage"`
	Error    string       `json:"error,omitempty"`
	Shipping ShippingInfo `json:"shipping"`
	Billing  BillingInfo  `json:"billing"`
	Payment  PaymentInfo  `json:"payment"`
}

// NewWizard starts at shipping with billing defaulted to the shipping
// address.
func NewWizard() Wizard {
	return Wizard{
		Stage:   StageShipping,
		Billing: BillingInfo{SameAsShipping: true},
	}
}

// SetShipping replaces the shipping form. Changing the country resets state
// and city; changing the state resets city. Only stale children are reset,
// so a form that changes parent and children together is applied as sent.
func (w Wizard) SetShipping(form ShippingInfo) Wizard {
	if form.Country != w.Shipping.Country {
		if form.State == w.Shipping.State {
			form.State = ""
		}
		if form.City == w.Shipping.City {
			form.City = ""
		}
	} else if form.State != w.Shipping.State {
		if form.City == w.Shipping.City {
			form.City = ""
		}
	}
	w.Shipping = form
	return w
}

// SetBilling replaces the billing form.
func (w Wizard) SetBilling(form BillingInfo) Wizard {
	w.Billing = form
	return w
}

// SetPayment replaces the payment form, applying the input formatting rules:
// card digits regrouped in fours, expiry slashed after the month, CVV digits
// only. Complete month/year selections derive the combined expiry.
func (w Wizard) SetPayment(form PaymentInfo) Wizard {
	form.CardNumber = NormalizeCard(form.CardNumber)
	form.CVV = NormalizeCVV(form.CVV)
	if form.ExpiryMonth != "" && form.ExpiryYear != "" {
		form.ExpiryDate = CombineExpiry(form.ExpiryMonth, form.ExpiryYear)
	} else {
		form.ExpiryDate = NormalizeExpiry(form.ExpiryDate)
	}
	w.Payment = form
	return w
}

// Next validates the current stage and advances on success; on failure the
// stage is unchanged and the error message is set. Review advances without
// validation. Next from payment is a no-op; submission is a separate action.
func (w Wizard) Next(strictLocations bool, now time.Time) Wizard {
	switch w.Stage {
	case StageShipping:
		if msg := ValidateShipping(w.Shipping, strictLocations); msg != "" {
			w.Error = msg
			return w
		}
		w.Error = ""
		w.Stage = StageBilling
	case StageBilling:
		if msg := ValidateBilling(w.Billing); msg != "" {
			w.Error = msg
			return w
		}
		w.Error = ""
		w.Stage = StageReview
	case StageReview:
		w.Error = ""
		w.Stage = StagePayment
	}
	return w
}

// Back moves one stage backward, clearing the error and keeping all form
// state. Back from shipping is a no-op.
func (w Wizard) Back() Wizard {
	switch w.Stage {
	case StageBilling:
		w.Stage = StageShipping
	case StageReview:
		w.Stage = StageBilling
	case StagePayment:
		w.Stage = StageReview
	default:
		return w
	}
	w.Error = ""
	return w
}
