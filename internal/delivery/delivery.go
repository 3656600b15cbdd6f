// Package delivery holds the front ends that expose the storefront.
package delivery

import "context"

// Delivery is a long-running front end started by the application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
