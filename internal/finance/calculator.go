// Package finance holds the pure calculation layer for credit memos:
// the subtotal/tax split of a gross credit amount and the FULL/PARTIAL
// classification. All functions are deterministic and total over
// well-formed decimal inputs.
package finance

import (
	"github.com/shopspring/decimal"

	"credit-memo-service/internal/domain"
)

// TaxRatePercent is the fixed tax rate baked into every credit amount.
// Deliberately a compile-time constant; multi-jurisdiction VAT is out of
// scope for the current design.
const TaxRatePercent = 20

// grossDivisor converts a tax-inclusive amount to its net subtotal.
var grossDivisor = decimal.NewFromInt(100 + TaxRatePercent).Div(decimal.NewFromInt(100))

// SplitTax divides a gross credit amount into its net subtotal and tax
// portion. The subtotal is rounded half-up to 2 decimal places and the
// tax is the remainder, so subtotal + tax always equals the input.
func SplitTax(creditAmount decimal.Decimal) (subtotal, taxAmount decimal.Decimal) {
	subtotal = creditAmount.Div(grossDivisor).Round(2)
	taxAmount = creditAmount.Sub(subtotal)
	return subtotal, taxAmount
}

// ClassifyCredit returns FULL when the credit covers the whole original
// amount (equality included), PARTIAL otherwise.
func ClassifyCredit(creditAmount, originalAmount decimal.Decimal) domain.CreditType {
	if creditAmount.GreaterThanOrEqual(originalAmount) {
		return domain.CreditTypeFull
	}
	return domain.CreditTypePartial
}
