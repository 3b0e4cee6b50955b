package domain

import "github.com/shopspring/decimal"

// CreditType distinguishes a full credit from a partial one.
type CreditType string

const (
	CreditTypeFull    CreditType = "FULL"
	CreditTypePartial CreditType = "PARTIAL"
)

// CreditMemoDocument is the structured artifact the model is asked to
// produce. Authoritative values (numbers, identifiers, dates) are filled
// in by the core before the prompt is built; the model only authors the
// narrative fields. It exists for the duration of one request.
type CreditMemoDocument struct {
	CreditMemoNumber string                   `json:"creditMemoNumber"`
	IssueDate        string                   `json:"issueDate"`
	Issuer           IssuerDetails            `json:"issuer"`
	Recipient        RecipientDetails         `json:"recipient"`
	OriginalInvoice  OriginalInvoiceReference `json:"originalInvoice"`
	CreditInfo       CreditInformation        `json:"creditInfo"`

	// CreditLineItems may be absent or empty in the raw model reply;
	// rendering must tolerate that.
	CreditLineItems []CreditLineItem `json:"creditLineItems,omitempty"`

	FinancialSummary   FinancialSummary `json:"financialSummary"`
	TermsAndConditions string           `json:"termsAndConditions"`
	AuthorizedBy       string           `json:"authorizedBy"`
	Notes              string           `json:"notes,omitempty"`
}

// IssuerDetails names the party the credit is issued by.
type IssuerDetails struct {
	Name          string `json:"name"`
	Address       string `json:"address,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
}

// RecipientDetails names the customer receiving the credit.
type RecipientDetails struct {
	CustomerID    string       `json:"customerId"`
	Name          string       `json:"name"`
	Address       string       `json:"address,omitempty"`
	Email         string       `json:"email,omitempty"`
	Phone         string       `json:"phone,omitempty"`
	AccountNumber string       `json:"accountNumber,omitempty"`
	BankDetails   *BankDetails `json:"bankDetails,omitempty"`
}

// OriginalInvoiceReference points back at the credited invoice.
type OriginalInvoiceReference struct {
	InvoiceNumber  string          `json:"invoiceNumber"`
	InvoiceDate    string          `json:"invoiceDate"`
	OriginalAmount decimal.Decimal `json:"originalAmount"`
}

// CreditInformation holds the reason and the model-authored explanation.
type CreditInformation struct {
	Reason              string     `json:"reason"`
	DetailedExplanation string     `json:"detailedExplanation"`
	CreditType          CreditType `json:"creditType"`
}

// CreditLineItem is one credited line with a model-authored reason.
type CreditLineItem struct {
	ItemDescription string          `json:"itemDescription"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	LineTotal       decimal.Decimal `json:"lineTotal"`
	ReasonForCredit string          `json:"reasonForCredit"`
}

// FinancialSummary carries core-computed totals. The model must not
// invent these values.
type FinancialSummary struct {
	Subtotal          decimal.Decimal `json:"subtotal"`
	TaxAmount         decimal.Decimal `json:"taxAmount"`
	TotalCreditAmount decimal.Decimal `json:"totalCreditAmount"`
	Currency          string          `json:"currency"`
}

// RiskLevel grades a validation assessment.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// ValidationResult is the structured risk assessment returned by the
// validate endpoint.
type ValidationResult struct {
	IsValid         bool      `json:"isValid"`
	Issues          []string  `json:"issues"`
	Recommendations []string  `json:"recommendations"`
	RiskLevel       RiskLevel `json:"riskLevel"`
}
