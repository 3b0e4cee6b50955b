package usecase

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"credit-memo-service/internal/domain"
)

func sampleRequest() *domain.CreditMemoRequest {
	return &domain.CreditMemoRequest{
		Requester: domain.RequesterInfo{
			RequesterID:   "REQ-001",
			RequesterType: domain.RequesterCustomerService,
			Name:          "Dana Whitfield",
			Email:         "dana.whitfield@example.com",
			Department:    "Customer Care",
		},
		Customer: domain.CustomerInfo{
			CustomerID:   "CUST-1001",
			CustomerName: "Acme Industrial Ltd",
			Email:        "accounts@acme-industrial.example",
			BillingAddress: &domain.Address{
				Street:  "42 Foundry Road",
				City:    "Sheffield",
				ZipCode: "S1 2AB",
				Country: "United Kingdom",
			},
			AccountNumber: "GB-004412",
		},
		OriginalTransaction: domain.TransactionInfo{
			TransactionID:   "TXN-88341",
			InvoiceNumber:   "INV-2026-0042",
			TransactionDate: "2026-01-15",
			OriginalAmount:  decimal.RequireFromString("5000.00"),
			Currency:        "USD",
			LineItems: []domain.LineItem{
				{
					ItemID:      "ITEM-1",
					Description: "Hydraulic valve assembly",
					Quantity:    2,
					UnitPrice:   decimal.RequireFromString("1500.00"),
					TotalPrice:  decimal.RequireFromString("3000.00"),
				},
				{
					ItemID:      "ITEM-2",
					Description: "Installation service",
					Quantity:    1,
					UnitPrice:   decimal.RequireFromString("2000.00"),
					TotalPrice:  decimal.RequireFromString("2000.00"),
				},
			},
		},
		CreditDetails: domain.CreditDetails{
			Reason:            domain.ReasonDefectiveGoods,
			ReasonDescription: "One valve assembly arrived cracked and unusable",
			CreditAmount:      decimal.RequireFromString("500.00"),
			AffectedItems:     []string{"ITEM-1"},
			RequiresApproval:  false,
		},
	}
}

func TestContextSentence_CoversEveryRequesterType(t *testing.T) {
	types := []domain.RequesterType{
		domain.RequesterBusinessCustomer,
		domain.RequesterBankColleague,
		domain.RequesterSystemAutomated,
		domain.RequesterCustomerService,
	}
	seen := make(map[string]bool)
	for _, rt := range types {
		s := contextSentence(rt)
		assert.NotEmpty(t, s)
		assert.False(t, seen[s], "context sentence for %s duplicates another type", rt)
		seen[s] = true
	}
}

func TestResolveIssuer(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*domain.CreditMemoRequest)
		wantName  string
		wantEmail string
	}{
		{
			name: "bank colleague always issues under the bank identity",
			mutate: func(r *domain.CreditMemoRequest) {
				r.Requester.RequesterType = domain.RequesterBankColleague
				r.Issuer = &domain.IssuerInfo{CompanyName: "Should Be Ignored Ltd"}
			},
			wantName:  bankIssuerName,
			wantEmail: bankIssuerEmail,
		},
		{
			name: "issuer block used when present",
			mutate: func(r *domain.CreditMemoRequest) {
				r.Requester.RequesterType = domain.RequesterBusinessCustomer
				r.Issuer = &domain.IssuerInfo{
					CompanyName: "Acme Industrial Ltd",
					Email:       "billing@acme-industrial.example",
				}
			},
			wantName:  "Acme Industrial Ltd",
			wantEmail: "billing@acme-industrial.example",
		},
		{
			name: "placeholder populated from requester email when issuer absent",
			mutate: func(r *domain.CreditMemoRequest) {
				r.Requester.RequesterType = domain.RequesterBusinessCustomer
				r.Issuer = nil
			},
			wantName:  "Business Customer",
			wantEmail: "dana.whitfield@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := sampleRequest()
			tt.mutate(req)

			issuer := resolveIssuer(req)
			assert.Equal(t, tt.wantName, issuer.Name)
			assert.Equal(t, tt.wantEmail, issuer.Email)
		})
	}
}

func TestBuildCreditLineItems(t *testing.T) {
	t.Run("affected items resolve against the transaction lines", func(t *testing.T) {
		req := sampleRequest()

		items := buildCreditLineItems(req)
		assert.Len(t, items, 1)
		assert.Equal(t, "Hydraulic valve assembly", items[0].ItemDescription)
		assert.Equal(t, 2, items[0].Quantity)
		assert.Equal(t, itemReasonPlaceholder, items[0].ReasonForCredit)
	})

	t.Run("absent affected list defaults to a single All items entry", func(t *testing.T) {
		req := sampleRequest()
		req.CreditDetails.AffectedItems = nil

		items := buildCreditLineItems(req)
		assert.Len(t, items, 1)
		assert.Equal(t, "All items", items[0].ItemDescription)
		assert.True(t, items[0].LineTotal.Equal(req.CreditDetails.CreditAmount))
	})

	t.Run("unresolvable ids fall back to All items", func(t *testing.T) {
		req := sampleRequest()
		req.CreditDetails.AffectedItems = []string{"ITEM-DOES-NOT-EXIST"}

		items := buildCreditLineItems(req)
		assert.Len(t, items, 1)
		assert.Equal(t, "All items", items[0].ItemDescription)
	})
}

func TestBuildDocumentSkeleton(t *testing.T) {
	req := sampleRequest()

	skeleton := buildDocumentSkeleton(req, "CM-2026-ab12cd34", "2026-08-31")

	assert.Equal(t, "CM-2026-ab12cd34", skeleton.CreditMemoNumber)
	assert.Equal(t, "2026-08-31", skeleton.IssueDate)
	assert.Equal(t, domain.CreditTypePartial, skeleton.CreditInfo.CreditType)
	assert.Equal(t, explanationPlaceholder, skeleton.CreditInfo.DetailedExplanation)
	assert.Equal(t, "Dana Whitfield", skeleton.AuthorizedBy)

	assert.True(t, skeleton.FinancialSummary.Subtotal.Equal(decimal.RequireFromString("416.67")))
	assert.True(t, skeleton.FinancialSummary.TaxAmount.Equal(decimal.RequireFromString("83.33")))
	assert.True(t, skeleton.FinancialSummary.TotalCreditAmount.Equal(decimal.RequireFromString("500.00")))
	assert.Equal(t, "USD", skeleton.FinancialSummary.Currency)
}

func TestBuildDocumentPrompt(t *testing.T) {
	req := sampleRequest()
	skeleton := buildDocumentSkeleton(req, "CM-2026-ab12cd34", "2026-08-31")

	prompt, err := buildDocumentPrompt(req, skeleton)
	assert.NoError(t, err)

	// Context and data block.
	assert.Contains(t, prompt, contextSentence(domain.RequesterCustomerService))
	assert.Contains(t, prompt, "CUST-1001")
	assert.Contains(t, prompt, "INV-2026-0042")
	assert.Contains(t, prompt, "DEFECTIVE_GOODS")

	// Embedded JSON template with the pre-computed figures.
	assert.Contains(t, prompt, `"creditMemoNumber": "CM-2026-ab12cd34"`)
	assert.Contains(t, prompt, `"subtotal": "416.67"`)
	assert.Contains(t, prompt, `"taxAmount": "83.33"`)

	// Hard constraints.
	assert.Contains(t, prompt, "single JSON object only")
	assert.Contains(t, prompt, "YYYY-MM-DD")
	assert.Contains(t, prompt, "thousands separators")
	assert.Contains(t, prompt, `"All items"`)
}

func TestBuildSummaryPrompt(t *testing.T) {
	prompt := buildSummaryPrompt(sampleRequest())

	for _, want := range []string{
		"Acme Industrial Ltd", "CUST-1001", "INV-2026-0042",
		"DEFECTIVE_GOODS", "500", "USD", "Dana Whitfield", "CUSTOMER_SERVICE",
	} {
		assert.Contains(t, prompt, want)
	}
	assert.True(t, strings.Contains(prompt, "2-3 sentence"))
}

func TestBuildValidationPrompt(t *testing.T) {
	prompt := buildValidationPrompt(sampleRequest())

	assert.Contains(t, prompt, "500")
	assert.Contains(t, prompt, "5000")
	assert.Contains(t, prompt, "CUSTOMER_SERVICE")
	assert.Contains(t, prompt, `"riskLevel"`)
	assert.Contains(t, prompt, `"isValid"`)
}

func TestFormatAddress(t *testing.T) {
	assert.Equal(t, "", formatAddress(nil))
	assert.Equal(t, "42 Foundry Road, Sheffield, S1 2AB, United Kingdom",
		formatAddress(&domain.Address{
			Street:  "42 Foundry Road",
			City:    "Sheffield",
			ZipCode: "S1 2AB",
			Country: "United Kingdom",
		}))
}
