// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"solarsavers/internal/domain/entity"
)

// SessionUsecase owns the process-wide identity and the durable token key.
type SessionUsecase interface {
	// Initialize checks the stored token once. Later calls return immediately.
	Initialize(ctx context.Context)
	// Ready is closed when the session leaves the Unknown state.
	Ready() <-chan struct{}
	Snapshot() entity.Session
	Login(ctx context.Context, email, password string) (*entity.User, error)
	Register(ctx context.Context, reg entity.Registration) (*entity.User, error)
	// RegisterVendor creates a vendor account pending approval. The session is unchanged.
	RegisterVendor(ctx context.Context, reg entity.VendorRegistration) error
	Logout(ctx context.Context)
	// Reject demotes the session after the API refused its token.
	Reject(ctx context.Context)
	// OnChange registers fn to run after every state transition.
	OnChange(fn func(entity.Session))
}
