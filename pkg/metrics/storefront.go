package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StorefrontMetrics records cart activity and order submission outcomes.
type StorefrontMetrics struct {
	cartMutations  *prometheus.CounterVec
	submitDuration *prometheus.HistogramVec
	submitSuccess  *prometheus.CounterVec
	submitFailure  *prometheus.CounterVec
}

// NewStorefrontMetrics registers the storefront metrics on the provided registerer.
func NewStorefrontMetrics(reg prometheus.Registerer) *StorefrontMetrics {
	if reg == nil {
		return &StorefrontMetrics{}
	}
	cartMutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Cart mutations by operation.",
	}, []string{"op"})
	submitDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "order_submit_duration_seconds",
		Help:    "Duration of order submissions in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"submitter"})
	submitSuccess := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_submit_success",
		Help: "Successful order submissions.",
	}, []string{"submitter"})
	submitFailure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_submit_failure",
		Help: "Failed order submissions.",
	}, []string{"submitter"})
	reg.MustRegister(cartMutations, submitDuration, submitSuccess, submitFailure)
	return &StorefrontMetrics{
		cartMutations:  cartMutations,
		submitDuration: submitDuration,
		submitSuccess:  submitSuccess,
		submitFailure:  submitFailure,
	}
}

// IncCartMutation counts a cart operation (add, remove, update_quantity, clear).
func (m *StorefrontMetrics) IncCartMutation(op string) {
	if m == nil || m.cartMutations == nil {
		return
	}
	m.cartMutations.WithLabelValues(normalizeLabel(op)).Inc()
}

// ObserveSubmitDuration records the duration of an order submission.
func (m *StorefrontMetrics) ObserveSubmitDuration(submitter string, duration time.Duration) {
	if m == nil || m.submitDuration == nil {
		return
	}
	m.submitDuration.WithLabelValues(normalizeLabel(submitter)).Observe(duration.Seconds())
}

// IncSubmitSuccess increments the success counter for the named submitter.
func (m *StorefrontMetrics) IncSubmitSuccess(submitter string) {
	if m == nil || m.submitSuccess == nil {
		return
	}
	m.submitSuccess.WithLabelValues(normalizeLabel(submitter)).Inc()
}

// IncSubmitFailure increments the failure counter for the named submitter.
func (m *StorefrontMetrics) IncSubmitFailure(submitter string) {
	if m == nil || m.submitFailure == nil {
		return
	}
	m.submitFailure.WithLabelValues(normalizeLabel(submitter)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
