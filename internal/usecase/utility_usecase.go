package usecase

import (
	"context"

	"solarsavers/internal/domain/entity"
)

// Estimate is the calculator page result.
type Estimate struct {
	Result          entity.CalculatorResult `json:"result"`
	Recommendations []entity.Product        `json:"recommendations"`
	// Demo is set when the result was computed locally after the API failed.
	Demo bool `json:"demo"`
}

// CalculatorUsecase sizes a system and recommends products.
type CalculatorUsecase interface {
	Calculate(ctx context.Context, in entity.CalculatorInput) (*Estimate, error)
}

// ChatUsecase is the assistant widget. The conversation id is kept across messages.
type ChatUsecase interface {
	Send(ctx context.Context, message string) (*entity.ChatReply, error)
	Reset()
}

// ContactUsecase submits the public contact form.
type ContactUsecase interface {
	Submit(ctx context.Context, form entity.ContactForm) error
}

// SeedUsecase asks the API to load demo data. Failures are logged, never returned.
type SeedUsecase interface {
	Seed(ctx context.Context)
}
