// Package usecase orchestrates credit memo generation: it derives the
// financial fields, builds the model prompts, calls the gateway and
// assembles the API response. Each operation is a single linear
// pipeline with no retries and no state shared between requests.
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"credit-memo-service/internal/domain"
)

// GenerationError wraps any failure of the model gateway (transport,
// timeout, uncoercible reply). The original cause is preserved for
// operators; callers surface it as a generic server error.
type GenerationError struct {
	Op  string
	Err error
}

func (e *GenerationError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// CreditMemoUseCase coordinates the generation pipeline. It is stateless
// and safe for concurrent use; the model identifier is fixed at
// construction and echoed into response metadata.
type CreditMemoUseCase struct {
	gateway ModelGateway
	model   string
}

// NewCreditMemoUseCase creates a new instance of the usecase.
func NewCreditMemoUseCase(gateway ModelGateway, model string) *CreditMemoUseCase {
	return &CreditMemoUseCase{gateway: gateway, model: model}
}

// GenerateCreditMemo runs the full pipeline: compute derived values,
// build the document prompt, obtain the structured document and the
// summary from the model (two sequential calls), and assemble the final
// response. Either a complete response is returned or an error; there is
// no partial success.
func (uc *CreditMemoUseCase) GenerateCreditMemo(ctx context.Context, req *domain.CreditMemoRequest) (*domain.CreditMemoResponse, error) {
	start := time.Now()

	memoNumber := newMemoNumber(start)
	skeleton := buildDocumentSkeleton(req, memoNumber, start.Format("2006-01-02"))

	prompt, err := buildDocumentPrompt(req, skeleton)
	if err != nil {
		return nil, &GenerationError{Op: "build document prompt", Err: err}
	}

	var doc domain.CreditMemoDocument
	if err := uc.gateway.GenerateStructured(ctx, prompt, &doc); err != nil {
		return nil, &GenerationError{Op: "generate credit memo document", Err: err}
	}
	if doc.CreditMemoNumber == "" {
		// The number is core-generated; restore it if the model
		// dropped the field.
		doc.CreditMemoNumber = memoNumber
	}

	summary, err := uc.GenerateSummary(ctx, req)
	if err != nil {
		return nil, err
	}

	return assembleResponse(req, &doc, summary, uc.model, time.Since(start)), nil
}

// GenerateSummary returns a short management-facing synopsis of the
// request via a single model call.
func (uc *CreditMemoUseCase) GenerateSummary(ctx context.Context, req *domain.CreditMemoRequest) (string, error) {
	reply, err := uc.gateway.Generate(ctx, buildSummaryPrompt(req))
	if err != nil {
		return "", &GenerationError{Op: "generate credit memo summary", Err: err}
	}
	return strings.TrimSpace(reply), nil
}

// ValidateRequest asks the model for a structured risk assessment of
// the request.
func (uc *CreditMemoUseCase) ValidateRequest(ctx context.Context, req *domain.CreditMemoRequest) (*domain.ValidationResult, error) {
	var result domain.ValidationResult
	if err := uc.gateway.GenerateStructured(ctx, buildValidationPrompt(req), &result); err != nil {
		return nil, &GenerationError{Op: "validate credit memo request", Err: err}
	}
	return &result, nil
}

// newMemoNumber produces a memo number in the form CM-<year>-<8 hex>.
func newMemoNumber(now time.Time) string {
	return fmt.Sprintf("CM-%d-%s", now.Year(), uuid.NewString()[:8])
}
