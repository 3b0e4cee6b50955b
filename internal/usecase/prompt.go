package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"credit-memo-service/internal/domain"
	"credit-memo-service/internal/finance"
)

// Fixed identity used as issuer when a bank colleague raises the memo.
const (
	bankIssuerName    = "Meridian National Bank"
	bankIssuerAddress = "1 Meridian Plaza, London, EC2V 7HN, United Kingdom"
	bankIssuerEmail   = "credit.operations@meridiannational.example"
	bankIssuerPhone   = "+44 20 7946 0000"
)

// termsAndConditions is the fixed boilerplate attached to every memo.
const termsAndConditions = "This credit memo is issued against the referenced invoice and may be " +
	"applied to outstanding or future balances, or refunded in accordance with the issuer's refund " +
	"policy. It does not constitute a cash obligation unless expressly stated. Any queries must be " +
	"raised within 30 days of the issue date."

// Placeholder markers for the fields the model is asked to author.
const (
	explanationPlaceholder = "<write a professional 3-4 sentence explanation of this credit>"
	itemReasonPlaceholder  = "<state why this item is being credited>"
)

// contextSentence returns the fixed framing sentence for each requester
// type. The switch is exhaustive over the enum.
func contextSentence(t domain.RequesterType) string {
	switch t {
	case domain.RequesterBusinessCustomer:
		return "This credit memo is being issued by a business customer to credit one of its own customers."
	case domain.RequesterBankColleague:
		return "This credit memo is being issued by our financial institution at the request of a bank colleague."
	case domain.RequesterSystemAutomated:
		return "This credit memo was triggered by an automated system process based on predefined crediting rules."
	case domain.RequesterCustomerService:
		return "This credit memo is being raised by customer service to resolve a customer issue."
	default:
		return "This credit memo is being issued by our financial institution."
	}
}

// resolveIssuer decides whose identity appears as the credit's source.
// Bank colleagues always issue under the fixed bank identity; everyone
// else issues under the request's issuer block, falling back to a
// generic business-customer identity carrying the requester's email.
func resolveIssuer(req *domain.CreditMemoRequest) domain.IssuerDetails {
	if req.Requester.RequesterType == domain.RequesterBankColleague {
		return domain.IssuerDetails{
			Name:    bankIssuerName,
			Address: bankIssuerAddress,
			Email:   bankIssuerEmail,
			Phone:   bankIssuerPhone,
		}
	}
	if req.Issuer != nil {
		return domain.IssuerDetails{
			Name:          req.Issuer.CompanyName,
			Address:       formatAddress(req.Issuer.Address),
			Email:         req.Issuer.Email,
			Phone:         req.Issuer.Phone,
			AccountNumber: req.Issuer.AccountNumber,
		}
	}
	return domain.IssuerDetails{
		Name:  "Business Customer",
		Email: req.Requester.Email,
	}
}

// formatAddress flattens an address to a single comma-joined line,
// skipping absent parts. Returns "" for a nil address.
func formatAddress(a *domain.Address) string {
	if a == nil {
		return ""
	}
	parts := make([]string, 0, 5)
	for _, p := range []string{a.Street, a.City, a.State, a.ZipCode, a.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// buildDocumentSkeleton pre-fills a credit memo document with every
// authoritative value: identifiers, dates, issuer/recipient blocks and
// the computed financial summary. Only the narrative fields carry
// placeholders for the model to replace. Pre-computing everything here
// removes the model's opportunity to hallucinate figures.
func buildDocumentSkeleton(req *domain.CreditMemoRequest, memoNumber, issueDate string) *domain.CreditMemoDocument {
	subtotal, taxAmount := finance.SplitTax(req.CreditDetails.CreditAmount)
	creditType := finance.ClassifyCredit(req.CreditDetails.CreditAmount, req.OriginalTransaction.OriginalAmount)

	return &domain.CreditMemoDocument{
		CreditMemoNumber: memoNumber,
		IssueDate:        issueDate,
		Issuer:           resolveIssuer(req),
		Recipient: domain.RecipientDetails{
			CustomerID:    req.Customer.CustomerID,
			Name:          req.Customer.CustomerName,
			Address:       formatAddress(req.Customer.BillingAddress),
			Email:         req.Customer.Email,
			Phone:         req.Customer.Phone,
			AccountNumber: req.Customer.AccountNumber,
			BankDetails:   req.Customer.BankDetails,
		},
		OriginalInvoice: domain.OriginalInvoiceReference{
			InvoiceNumber:  req.OriginalTransaction.InvoiceNumber,
			InvoiceDate:    req.OriginalTransaction.TransactionDate,
			OriginalAmount: req.OriginalTransaction.OriginalAmount,
		},
		CreditInfo: domain.CreditInformation{
			Reason:              string(req.CreditDetails.Reason),
			DetailedExplanation: explanationPlaceholder,
			CreditType:          creditType,
		},
		CreditLineItems: buildCreditLineItems(req),
		FinancialSummary: domain.FinancialSummary{
			Subtotal:          subtotal,
			TaxAmount:         taxAmount,
			TotalCreditAmount: req.CreditDetails.CreditAmount,
			Currency:          req.OriginalTransaction.Currency,
		},
		TermsAndConditions: termsAndConditions,
		AuthorizedBy:       req.Requester.Name,
		Notes:              req.CreditDetails.AdditionalNotes,
	}
}

// buildCreditLineItems derives the credited lines from the affected item
// ids, matched against the original transaction's line items. When no
// affected item resolves, a single "All items" entry covers the whole
// credit amount.
func buildCreditLineItems(req *domain.CreditMemoRequest) []domain.CreditLineItem {
	byID := make(map[string]domain.LineItem, len(req.OriginalTransaction.LineItems))
	for _, li := range req.OriginalTransaction.LineItems {
		byID[li.ItemID] = li
	}

	var items []domain.CreditLineItem
	for _, id := range req.CreditDetails.AffectedItems {
		li, ok := byID[id]
		if !ok {
			continue
		}
		items = append(items, domain.CreditLineItem{
			ItemDescription: li.Description,
			Quantity:        li.Quantity,
			UnitPrice:       li.UnitPrice,
			LineTotal:       li.TotalPrice,
			ReasonForCredit: itemReasonPlaceholder,
		})
	}

	if len(items) == 0 {
		items = append(items, domain.CreditLineItem{
			ItemDescription: "All items",
			Quantity:        1,
			UnitPrice:       req.CreditDetails.CreditAmount,
			LineTotal:       req.CreditDetails.CreditAmount,
			ReasonForCredit: itemReasonPlaceholder,
		})
	}
	return items
}

// buildDocumentPrompt composes the full-document prompt: the requester
// context, the labeled data block, the pre-filled JSON template and the
// hard output constraints.
func buildDocumentPrompt(req *domain.CreditMemoRequest, skeleton *domain.CreditMemoDocument) (string, error) {
	tpl, err := json.MarshalIndent(skeleton, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal document template: %w", err)
	}

	var b strings.Builder
	b.WriteString(contextSentence(req.Requester.RequesterType))
	b.WriteString("\n\n")

	b.WriteString("REQUESTER INFORMATION:\n")
	fmt.Fprintf(&b, "- Requester Type: %s\n", req.Requester.RequesterType)
	fmt.Fprintf(&b, "- Name: %s\n", req.Requester.Name)
	fmt.Fprintf(&b, "- Department: %s\n\n", req.Requester.Department)

	b.WriteString("ISSUER INFORMATION:\n")
	fmt.Fprintf(&b, "- Name: %s\n", skeleton.Issuer.Name)
	fmt.Fprintf(&b, "- Address: %s\n\n", skeleton.Issuer.Address)

	b.WriteString("CUSTOMER INFORMATION:\n")
	fmt.Fprintf(&b, "- Customer ID: %s\n", req.Customer.CustomerID)
	fmt.Fprintf(&b, "- Name: %s\n", req.Customer.CustomerName)
	fmt.Fprintf(&b, "- Email: %s\n", req.Customer.Email)
	fmt.Fprintf(&b, "- Account Number: %s\n", req.Customer.AccountNumber)
	fmt.Fprintf(&b, "- Address: %s\n\n", formatAddress(req.Customer.BillingAddress))

	b.WriteString("ORIGINAL TRANSACTION:\n")
	fmt.Fprintf(&b, "- Transaction ID: %s\n", req.OriginalTransaction.TransactionID)
	fmt.Fprintf(&b, "- Invoice Number: %s\n", req.OriginalTransaction.InvoiceNumber)
	fmt.Fprintf(&b, "- Transaction Date: %s\n", req.OriginalTransaction.TransactionDate)
	fmt.Fprintf(&b, "- Original Amount: %s %s\n", req.OriginalTransaction.OriginalAmount, req.OriginalTransaction.Currency)
	fmt.Fprintf(&b, "- Number of Line Items: %d\n\n", len(req.OriginalTransaction.LineItems))

	b.WriteString("CREDIT REASON:\n")
	fmt.Fprintf(&b, "- Reason: %s\n", req.CreditDetails.Reason)
	fmt.Fprintf(&b, "- Description: %s\n", req.CreditDetails.ReasonDescription)
	fmt.Fprintf(&b, "- Credit Amount: %s %s\n", req.CreditDetails.CreditAmount, req.OriginalTransaction.Currency)
	fmt.Fprintf(&b, "- Credit Type: %s\n", skeleton.CreditInfo.CreditType)
	fmt.Fprintf(&b, "- Additional Notes: %s\n\n", req.CreditDetails.AdditionalNotes)

	b.WriteString("Complete the following credit memo document. Every identifier, date and monetary value ")
	b.WriteString("is already filled in. Author only the fields marked with angle brackets: the detailed ")
	b.WriteString("explanation and each line item's reason for credit.\n\n")

	b.WriteString("JSON TEMPLATE:\n")
	b.Write(tpl)
	b.WriteString("\n\n")

	b.WriteString("HARD CONSTRAINTS:\n")
	b.WriteString("1. Respond with a single JSON object only - no markdown fences, no commentary.\n")
	b.WriteString("2. Do not invent or restate financial figures; copy every provided value unchanged.\n")
	b.WriteString("3. All dates must use ISO YYYY-MM-DD format.\n")
	b.WriteString("4. Numeric values must not contain thousands separators.\n")
	b.WriteString("5. creditLineItems must contain at least one entry; when no affected items were listed, credit \"All items\" as a single entry.\n")
	b.WriteString("6. The detailed explanation must be a professional 3-4 sentence account of the credit reason.\n")

	return b.String(), nil
}

// buildSummaryPrompt requests a short management-facing synopsis of the
// request.
func buildSummaryPrompt(req *domain.CreditMemoRequest) string {
	var b strings.Builder
	b.WriteString("Provide a brief 2-3 sentence summary of this credit memo request:\n\n")
	fmt.Fprintf(&b, "- Customer: %s (ID: %s)\n", req.Customer.CustomerName, req.Customer.CustomerID)
	fmt.Fprintf(&b, "- Original Invoice: %s\n", req.OriginalTransaction.InvoiceNumber)
	fmt.Fprintf(&b, "- Credit Reason: %s\n", req.CreditDetails.Reason)
	fmt.Fprintf(&b, "- Credit Amount: %s %s\n", req.CreditDetails.CreditAmount, req.OriginalTransaction.Currency)
	fmt.Fprintf(&b, "- Requester: %s (%s)\n\n", req.Requester.Name, req.Requester.RequesterType)
	b.WriteString("Summarize the key details in a professional manner suitable for management review. ")
	b.WriteString("Respond with plain prose only.")
	return b.String()
}

// buildValidationPrompt requests a structured risk assessment of the
// request.
func buildValidationPrompt(req *domain.CreditMemoRequest) string {
	var b strings.Builder
	b.WriteString("Validate this credit memo request and identify any issues or concerns:\n\n")
	fmt.Fprintf(&b, "- Credit Amount: %s (Original Transaction: %s)\n",
		req.CreditDetails.CreditAmount, req.OriginalTransaction.OriginalAmount)
	fmt.Fprintf(&b, "- Reason: %s - %s\n", req.CreditDetails.Reason, req.CreditDetails.ReasonDescription)
	fmt.Fprintf(&b, "- Requester Type: %s\n", req.Requester.RequesterType)
	fmt.Fprintf(&b, "- Requires Approval: %t\n\n", req.CreditDetails.RequiresApproval)
	b.WriteString("Analyze:\n")
	b.WriteString("1. Is the credit amount reasonable compared to the original transaction?\n")
	b.WriteString("2. Is the reason clearly explained and justified?\n")
	b.WriteString("3. Are there any red flags or concerns?\n")
	b.WriteString("4. Should this require additional approval?\n\n")
	b.WriteString(`Respond with a single JSON object only, shaped as: {"isValid": boolean, ` +
		`"issues": [string], "recommendations": [string], "riskLevel": "LOW"|"MEDIUM"|"HIGH"}.`)
	return b.String()
}
