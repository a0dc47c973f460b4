package payouts

import (
	"fmt"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FeeBreakdown is the fee split of a base amount.
type FeeBreakdown struct {
	BaseAmount         decimal.Decimal `json:"baseAmount"`
	FeePercent         decimal.Decimal `json:"feePercent"`
	Fees               decimal.Decimal `json:"fees"`
	GstPercent         decimal.Decimal `json:"gstPercent"`
	Gst                decimal.Decimal `json:"gst"`
	TotalIncludingFees decimal.Decimal `json:"totalIncludingFees"`
	HostNet            decimal.Decimal `json:"hostNet"`
}

// FeeCalculator applies the platform fee and the GST charged on that fee.
type FeeCalculator struct {
	feePercent decimal.Decimal
	gstPercent decimal.Decimal
}

// NewFeeCalculator creates a FeeCalculator; percentages must be within [0, 100].
func NewFeeCalculator(feePercent, gstPercent float64) (*FeeCalculator, error) {
	fee := decimal.NewFromFloat(feePercent)
	gst := decimal.NewFromFloat(gstPercent)
	if fee.IsNegative() || fee.GreaterThan(hundred) || gst.IsNegative() || gst.GreaterThan(hundred) {
		return nil, fmt.Errorf("%w: percentages must be between 0 and 100", apperr.ErrInvalidInput)
	}
	return &FeeCalculator{feePercent: fee, gstPercent: gst}, nil
}

// Calculate computes fees = base*fee%/100, gst = fees*gst%/100 and
// total = base+fees+gst, each rounded to two decimal places. HostNet is what a
// payout would settle for the same captured amount.
func (c *FeeCalculator) Calculate(base decimal.Decimal) (FeeBreakdown, error) {
	if base.IsNegative() {
		return FeeBreakdown{}, fmt.Errorf("%w: negative amount", apperr.ErrInvalidInput)
	}

	fees := base.Mul(c.feePercent).Div(hundred).Round(2)
	gst := fees.Mul(c.gstPercent).Div(hundred).Round(2)

	return FeeBreakdown{
		BaseAmount:         base.Round(2),
		FeePercent:         c.feePercent,
		Fees:               fees,
		GstPercent:         c.gstPercent,
		Gst:                gst,
		TotalIncludingFees: base.Add(fees).Add(gst).Round(2),
		HostNet:            Net(CapturedTotals{Gross: base, Fees: fees, Gst: gst}),
	}, nil
}

// Net returns gross minus fees and GST, floored at zero.
func Net(totals CapturedTotals) decimal.Decimal {
	net := totals.Gross.Sub(totals.Fees).Sub(totals.Gst)
	if net.IsNegative() {
		return decimal.Zero
	}
	return net.Round(2)
}
