package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"credit-memo-service/internal/domain"
)

// lineItemsFallback is rendered when the model's document carries no
// line-item breakdown. An unguarded iteration here once took down whole
// requests; absent substructures are a rendering case, not an error.
const lineItemsFallback = "No line item breakdown available"

// assembleResponse combines the original request, the model's document
// and the summary into the final API payload. Credit amount, currency
// and reason are copied from the request; the document's restated copies
// appear only inside the textual rendering.
func assembleResponse(req *domain.CreditMemoRequest, doc *domain.CreditMemoDocument,
	summary, model string, elapsed time.Duration) *domain.CreditMemoResponse {

	creditMemoID := uuid.NewString()

	status := domain.StatusDraft
	if req.CreditDetails.RequiresApproval {
		status = domain.StatusPendingApproval
	}

	return &domain.CreditMemoResponse{
		CreditMemoID:     creditMemoID,
		CreditMemoNumber: doc.CreditMemoNumber,
		GeneratedAt:      time.Now(),
		Status:           status,

		OriginalInvoiceNumber: req.OriginalTransaction.InvoiceNumber,
		CustomerID:            req.Customer.CustomerID,
		CustomerName:          req.Customer.CustomerName,

		CreditAmount: req.CreditDetails.CreditAmount,
		Currency:     req.OriginalTransaction.Currency,
		Reason:       string(req.CreditDetails.Reason),

		CreditMemoDocument: renderDocument(doc),
		Summary:            summary,

		RequiresApproval: req.CreditDetails.RequiresApproval,
		ApprovalStatus:   string(status),

		GeneratedBy: req.Requester.Name,
		Metadata: domain.ProcessingMetadata{
			ProcessingTimeMs: elapsed.Milliseconds(),
			Model:            model,
			TokensUsed:       0,
			RequestID:        creditMemoID,
		},
	}
}

// renderDocument produces the deterministic human-readable rendering of
// the document in a fixed section order. Optionally-absent substructures
// (line items, bank details, notes) each have a single designated
// fallback instead of ad hoc nil checks.
func renderDocument(doc *domain.CreditMemoDocument) string {
	var b strings.Builder

	b.WriteString("=== CREDIT MEMO ===\n\n")
	fmt.Fprintf(&b, "Credit Memo Number: %s\n", doc.CreditMemoNumber)
	fmt.Fprintf(&b, "Issue Date: %s\n\n", doc.IssueDate)

	b.WriteString("ISSUER:\n")
	fmt.Fprintf(&b, "Name: %s\n", doc.Issuer.Name)
	fmt.Fprintf(&b, "Address: %s\n", doc.Issuer.Address)
	fmt.Fprintf(&b, "Email: %s\n", doc.Issuer.Email)
	fmt.Fprintf(&b, "Phone: %s\n\n", doc.Issuer.Phone)

	b.WriteString("RECIPIENT:\n")
	fmt.Fprintf(&b, "Name: %s\n", doc.Recipient.Name)
	fmt.Fprintf(&b, "Customer ID: %s\n", doc.Recipient.CustomerID)
	fmt.Fprintf(&b, "Address: %s\n", doc.Recipient.Address)
	fmt.Fprintf(&b, "Account Number: %s\n", doc.Recipient.AccountNumber)
	if bd := doc.Recipient.BankDetails; bd != nil {
		b.WriteString("BANK DETAILS:\n")
		fmt.Fprintf(&b, "Bank: %s (%s)\n", bd.BankName, bd.BankBranch)
		fmt.Fprintf(&b, "Sort Code: %s\n", bd.SortCode)
		fmt.Fprintf(&b, "SWIFT: %s\n", bd.SwiftCode)
		fmt.Fprintf(&b, "Account Holder: %s\n", bd.AccountHolderName)
	}
	b.WriteString("\n")

	b.WriteString("ORIGINAL INVOICE REFERENCE:\n")
	fmt.Fprintf(&b, "Invoice Number: %s\n", doc.OriginalInvoice.InvoiceNumber)
	fmt.Fprintf(&b, "Invoice Date: %s\n", doc.OriginalInvoice.InvoiceDate)
	fmt.Fprintf(&b, "Original Amount: %s\n\n", doc.OriginalInvoice.OriginalAmount)

	b.WriteString("CREDIT REASON:\n")
	fmt.Fprintf(&b, "%s (%s)\n", doc.CreditInfo.Reason, doc.CreditInfo.CreditType)
	fmt.Fprintf(&b, "%s\n\n", doc.CreditInfo.DetailedExplanation)

	b.WriteString("CREDIT LINE ITEMS:\n")
	if len(doc.CreditLineItems) == 0 {
		b.WriteString(lineItemsFallback + "\n")
	} else {
		for _, item := range doc.CreditLineItems {
			fmt.Fprintf(&b, "- %s (Qty: %d) @ %s = %s - %s\n",
				item.ItemDescription,
				item.Quantity,
				item.UnitPrice,
				item.LineTotal,
				item.ReasonForCredit)
		}
	}

	b.WriteString("\nFINANCIAL SUMMARY:\n")
	fmt.Fprintf(&b, "Subtotal: %s\n", doc.FinancialSummary.Subtotal)
	fmt.Fprintf(&b, "Tax: %s\n", doc.FinancialSummary.TaxAmount)
	fmt.Fprintf(&b, "TOTAL CREDIT: %s %s\n\n",
		doc.FinancialSummary.TotalCreditAmount, doc.FinancialSummary.Currency)

	fmt.Fprintf(&b, "Terms & Conditions: %s\n", doc.TermsAndConditions)
	fmt.Fprintf(&b, "Authorized By: %s\n", doc.AuthorizedBy)
	if doc.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", doc.Notes)
	}

	return b.String()
}
