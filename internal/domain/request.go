package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RequesterType identifies the party initiating the credit memo.
type RequesterType string

const (
	RequesterBusinessCustomer RequesterType = "BUSINESS_CUSTOMER"
	RequesterBankColleague    RequesterType = "BANK_COLLEAGUE"
	RequesterSystemAutomated  RequesterType = "SYSTEM_AUTOMATED"
	RequesterCustomerService  RequesterType = "CUSTOMER_SERVICE"
)

// CreditReason classifies why the credit is being issued.
type CreditReason string

const (
	ReasonProductReturn   CreditReason = "PRODUCT_RETURN"
	ReasonDefectiveGoods  CreditReason = "DEFECTIVE_GOODS"
	ReasonBillingError    CreditReason = "BILLING_ERROR"
	ReasonOvercharge      CreditReason = "OVERCHARGE"
	ReasonPriceAdjustment CreditReason = "PRICE_ADJUSTMENT"
	ReasonServiceIssue    CreditReason = "SERVICE_ISSUE"
	ReasonCancellation    CreditReason = "CANCELLATION"
	ReasonGoodwillGesture CreditReason = "GOODWILL_GESTURE"
	ReasonOther           CreditReason = "OTHER"
)

// CreditMemoRequest is the inbound payload for every endpoint. It is
// constructed per HTTP call and never persisted.
type CreditMemoRequest struct {
	Requester           RequesterInfo   `json:"requester"`
	Issuer              *IssuerInfo     `json:"issuer,omitempty"`
	Customer            CustomerInfo    `json:"customer"`
	OriginalTransaction TransactionInfo `json:"originalTransaction"`
	CreditDetails       CreditDetails   `json:"creditDetails"`
}

// RequesterInfo identifies who asked for the credit memo.
type RequesterInfo struct {
	RequesterID   string        `json:"requesterId"`
	RequesterType RequesterType `json:"requesterType"`
	Name          string        `json:"name"`
	Email         string        `json:"email,omitempty"`
	Department    string        `json:"department,omitempty"`
}

// IssuerInfo is the business issuing the memo. Only meaningful when the
// requester type is BUSINESS_CUSTOMER.
type IssuerInfo struct {
	CompanyName   string   `json:"companyName,omitempty"`
	Email         string   `json:"email,omitempty"`
	Phone         string   `json:"phone,omitempty"`
	Address       *Address `json:"address,omitempty"`
	AccountNumber string   `json:"accountNumber,omitempty"`
}

// CustomerInfo is the recipient of the credit memo.
type CustomerInfo struct {
	CustomerID     string       `json:"customerId"`
	CustomerName   string       `json:"customerName"`
	Email          string       `json:"email,omitempty"`
	Phone          string       `json:"phone,omitempty"`
	BillingAddress *Address     `json:"billingAddress,omitempty"`
	AccountNumber  string       `json:"accountNumber,omitempty"`
	BankDetails    *BankDetails `json:"bankDetails,omitempty"`
}

// Address is a postal address.
type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
	Country string `json:"country,omitempty"`
}

// BankDetails carries payout routing for customers banking elsewhere.
type BankDetails struct {
	BankName          string `json:"bankName,omitempty"`
	BankBranch        string `json:"bankBranch,omitempty"`
	SortCode          string `json:"sortCode,omitempty"`
	SwiftCode         string `json:"swiftCode,omitempty"`
	AccountHolderName string `json:"accountHolderName,omitempty"`
}

// TransactionInfo references the transaction being credited.
type TransactionInfo struct {
	TransactionID   string          `json:"transactionId,omitempty"`
	InvoiceNumber   string          `json:"invoiceNumber"`
	TransactionDate string          `json:"transactionDate"`
	OriginalAmount  decimal.Decimal `json:"originalAmount"`
	Currency        string          `json:"currency"`
	LineItems       []LineItem      `json:"lineItems,omitempty"`
}

// LineItem is one line of the original invoice.
type LineItem struct {
	ItemID      string          `json:"itemId,omitempty"`
	Description string          `json:"description,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

// CreditDetails carries the reason and amount of the requested credit.
type CreditDetails struct {
	Reason            CreditReason    `json:"reason"`
	ReasonDescription string          `json:"reasonDescription"`
	CreditAmount      decimal.Decimal `json:"creditAmount"`
	AffectedItems     []string        `json:"affectedItems,omitempty"`
	AdditionalNotes   string          `json:"additionalNotes,omitempty"`
	RequiresApproval  bool            `json:"requiresApproval"`
	ApproverEmail     string          `json:"approverEmail,omitempty"`
}

var validRequesterTypes = map[RequesterType]bool{
	RequesterBusinessCustomer: true,
	RequesterBankColleague:    true,
	RequesterSystemAutomated:  true,
	RequesterCustomerService:  true,
}

var validCreditReasons = map[CreditReason]bool{
	ReasonProductReturn:   true,
	ReasonDefectiveGoods:  true,
	ReasonBillingError:    true,
	ReasonOvercharge:      true,
	ReasonPriceAdjustment: true,
	ReasonServiceIssue:    true,
	ReasonCancellation:    true,
	ReasonGoodwillGesture: true,
	ReasonOther:           true,
}

// Validate checks the required fields and returns a field -> message map.
// An empty map means the request is well formed. Handlers run this before
// any model call so malformed requests never reach the gateway.
func (r *CreditMemoRequest) Validate() map[string]string {
	errs := make(map[string]string)

	if r.Requester.RequesterID == "" {
		errs["requester.requesterId"] = "Requester ID is required"
	}
	if r.Requester.RequesterType == "" {
		errs["requester.requesterType"] = "Requester type is required"
	} else if !validRequesterTypes[r.Requester.RequesterType] {
		errs["requester.requesterType"] = "Unknown requester type: " + string(r.Requester.RequesterType)
	}
	if r.Requester.Name == "" {
		errs["requester.name"] = "Requester name is required"
	}

	if r.Customer.CustomerID == "" {
		errs["customer.customerId"] = "Customer ID is required"
	}
	if r.Customer.CustomerName == "" {
		errs["customer.customerName"] = "Customer name is required"
	}

	if r.OriginalTransaction.InvoiceNumber == "" {
		errs["originalTransaction.invoiceNumber"] = "Invoice number is required"
	}
	if r.OriginalTransaction.TransactionDate == "" {
		errs["originalTransaction.transactionDate"] = "Transaction date is required"
	} else if _, err := time.Parse("2006-01-02", r.OriginalTransaction.TransactionDate); err != nil {
		errs["originalTransaction.transactionDate"] = "Transaction date must be in YYYY-MM-DD format"
	}
	if r.OriginalTransaction.OriginalAmount.IsZero() {
		errs["originalTransaction.originalAmount"] = "Original amount is required"
	}
	if r.OriginalTransaction.Currency == "" {
		errs["originalTransaction.currency"] = "Currency is required"
	}

	if r.CreditDetails.Reason == "" {
		errs["creditDetails.reason"] = "Credit reason is required"
	} else if !validCreditReasons[r.CreditDetails.Reason] {
		errs["creditDetails.reason"] = "Unknown credit reason: " + string(r.CreditDetails.Reason)
	}
	if r.CreditDetails.ReasonDescription == "" {
		errs["creditDetails.reasonDescription"] = "Reason description is required"
	}
	if r.CreditDetails.CreditAmount.LessThanOrEqual(decimal.Zero) {
		errs["creditDetails.creditAmount"] = "Credit amount must be greater than zero"
	}

	return errs
}
