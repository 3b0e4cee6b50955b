package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"credit-memo-service/internal/domain"
)

func TestSplitTax(t *testing.T) {
	tests := []struct {
		name         string
		creditAmount string
		wantSubtotal string
		wantTax      string
	}{
		{
			name:         "500.00 splits into 416.67 + 83.33",
			creditAmount: "500.00",
			wantSubtotal: "416.67",
			wantTax:      "83.33",
		},
		{
			name:         "3600.00 splits into 3000.00 + 600.00",
			creditAmount: "3600.00",
			wantSubtotal: "3000",
			wantTax:      "600",
		},
		{
			name:         "1000.00 splits into 833.33 + 166.67",
			creditAmount: "1000.00",
			wantSubtotal: "833.33",
			wantTax:      "166.67",
		},
		{
			name:         "small amount",
			creditAmount: "0.01",
			wantSubtotal: "0.01",
			wantTax:      "0",
		},
		{
			name:         "rounding half up at the boundary",
			creditAmount: "1.23",
			wantSubtotal: "1.03",
			wantTax:      "0.2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.creditAmount)
			subtotal, tax := SplitTax(amount)

			assert.True(t, subtotal.Equal(decimal.RequireFromString(tt.wantSubtotal)),
				"subtotal = %s, want %s", subtotal, tt.wantSubtotal)
			assert.True(t, tax.Equal(decimal.RequireFromString(tt.wantTax)),
				"tax = %s, want %s", tax, tt.wantTax)

			// The split must always reassemble into the original amount.
			assert.True(t, subtotal.Add(tax).Equal(amount),
				"subtotal + tax = %s, want %s", subtotal.Add(tax), amount)
		})
	}
}

func TestSplitTax_AlwaysReassembles(t *testing.T) {
	for _, raw := range []string{"0.01", "1.00", "19.99", "123.45", "500.00", "999999.99"} {
		amount := decimal.RequireFromString(raw)
		subtotal, tax := SplitTax(amount)
		assert.True(t, subtotal.Add(tax).Equal(amount), "amount %s", raw)
	}
}

func TestClassifyCredit(t *testing.T) {
	tests := []struct {
		name           string
		creditAmount   string
		originalAmount string
		want           domain.CreditType
	}{
		{"credit below original is partial", "500.00", "5000.00", domain.CreditTypePartial},
		{"credit well below original is partial", "3600.00", "12000.00", domain.CreditTypePartial},
		{"equal amounts classify as full", "1000.00", "1000.00", domain.CreditTypeFull},
		{"credit above original is full", "1200.00", "1000.00", domain.CreditTypeFull},
		{"one cent below original is partial", "999.99", "1000.00", domain.CreditTypePartial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyCredit(
				decimal.RequireFromString(tt.creditAmount),
				decimal.RequireFromString(tt.originalAmount),
			)
			assert.Equal(t, tt.want, got)
		})
	}
}
