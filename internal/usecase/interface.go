package usecase

import "context"

// ModelGateway defines the outbound boundary to the language model.
// The usecase layer depends on this interface, not on a concrete
// implementation.
//
//go:generate mockgen -destination=mocks/mock_gateway.go -source=interface.go ModelGateway
type ModelGateway interface {
	// Generate sends a prompt and returns the raw reply text.
	Generate(ctx context.Context, prompt string) (string, error)
	// GenerateStructured sends a prompt and unmarshals the reply's
	// JSON object into out.
	GenerateStructured(ctx context.Context, prompt string, out any) error
}
