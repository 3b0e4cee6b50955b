package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditMemoStatus is the lifecycle state of a generated memo. Only
// DRAFT and PENDING_APPROVAL are produced here; the remaining values are
// written by downstream approval tooling and share this wire format.
type CreditMemoStatus string

const (
	StatusDraft           CreditMemoStatus = "DRAFT"
	StatusPendingApproval CreditMemoStatus = "PENDING_APPROVAL"
	StatusApproved        CreditMemoStatus = "APPROVED"
	StatusIssued          CreditMemoStatus = "ISSUED"
	StatusRejected        CreditMemoStatus = "REJECTED"
	StatusCancelled       CreditMemoStatus = "CANCELLED"
)

// CreditMemoResponse is the final API payload. CreditAmount, Currency
// and Reason always come from the request, never from the model's
// document, so the response cannot silently diverge from what was asked.
type CreditMemoResponse struct {
	CreditMemoID     string           `json:"creditMemoId"`
	CreditMemoNumber string           `json:"creditMemoNumber"`
	GeneratedAt      time.Time        `json:"generatedAt"`
	Status           CreditMemoStatus `json:"status"`

	OriginalInvoiceNumber string `json:"originalInvoiceNumber"`
	CustomerID            string `json:"customerId"`
	CustomerName          string `json:"customerName"`

	CreditAmount decimal.Decimal `json:"creditAmount"`
	Currency     string          `json:"currency"`
	Reason       string          `json:"reason"`

	CreditMemoDocument string `json:"creditMemoDocument"`
	Summary            string `json:"summary"`

	RequiresApproval bool   `json:"requiresApproval"`
	ApprovalStatus   string `json:"approvalStatus"`

	GeneratedBy string             `json:"generatedBy"`
	Metadata    ProcessingMetadata `json:"metadata"`
}

// ProcessingMetadata describes how the response was produced. TokensUsed
// is a placeholder; usage accounting is not extracted from the provider.
type ProcessingMetadata struct {
	ProcessingTimeMs int64  `json:"processingTimeMs"`
	Model            string `json:"model"`
	TokensUsed       int    `json:"tokensUsed"`
	RequestID        string `json:"requestId"`
}

// SummaryResponse is the payload of the summary endpoint.
type SummaryResponse struct {
	CustomerID    string `json:"customerId"`
	InvoiceNumber string `json:"invoiceNumber"`
	Summary       string `json:"summary"`
}

// HealthResponse is the payload of the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse is the structured error envelope for non-2xx replies.
// Errors carries per-field messages on request validation failures.
type ErrorResponse struct {
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Path      string            `json:"path"`
	Errors    map[string]string `json:"errors,omitempty"`
}
