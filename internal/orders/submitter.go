package orders

import "context"

// Submitter hands a finished order to a downstream destination. Name labels
// metrics and logs with the active implementation.
type Submitter interface {
	Submit(ctx context.Context, order Order) error
	Name() string
}
