//go:build unit
// +build unit

package payouts

import (
	"errors"
	"testing"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		allowed  bool
	}{
		{StatusPending, StatusProcessing, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusProcessing, StatusCompleted, true},
		{StatusProcessing, StatusFailed, true},
		{StatusProcessing, StatusPending, false},
		{StatusFailed, StatusPending, true},
		{StatusCompleted, StatusPending, false},
		{StatusCancelled, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestPayout_IsOpen(t *testing.T) {
	assert.True(t, (&Payout{PayoutStatus: StatusPending}).IsOpen())
	assert.True(t, (&Payout{PayoutStatus: StatusProcessing}).IsOpen())
	assert.False(t, (&Payout{PayoutStatus: StatusFailed}).IsOpen())
}

func TestPayout_Validate(t *testing.T) {
	p := &Payout{EventID: "ev-1", HostUserID: "u-1", PayoutStatus: StatusPending, NetAmount: decimal.NewFromInt(10)}
	assert.NoError(t, p.Validate())

	p.NetAmount = decimal.NewFromInt(-1)
	assert.Error(t, p.Validate())

	p.NetAmount = decimal.Zero
	p.PayoutStatus = "Paid"
	assert.Error(t, p.Validate())
}

func TestFeeCalculator_Calculate(t *testing.T) {
	calc, err := NewFeeCalculator(5, 18)
	require.NoError(t, err)

	b, err := calc.Calculate(decimal.NewFromInt(1000))
	require.NoError(t, err)
	assert.Equal(t, "50.00", b.Fees.StringFixed(2))
	assert.Equal(t, "9.00", b.Gst.StringFixed(2))
	assert.Equal(t, "1059.00", b.TotalIncludingFees.StringFixed(2))
	assert.Equal(t, "941.00", b.HostNet.StringFixed(2))

	b, err = calc.Calculate(decimal.RequireFromString("333.33"))
	require.NoError(t, err)
	assert.Equal(t, "16.67", b.Fees.StringFixed(2))
	assert.Equal(t, "3.00", b.Gst.StringFixed(2))
	assert.Equal(t, "353.00", b.TotalIncludingFees.StringFixed(2))

	_, err = calc.Calculate(decimal.NewFromInt(-1))
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))
}

func TestFeeCalculator_HostNetMatchesPayoutNetting(t *testing.T) {
	calc, err := NewFeeCalculator(10, 18)
	require.NoError(t, err)

	for _, amount := range []string{"100", "1000", "333.33", "0"} {
		base := decimal.RequireFromString(amount)
		b, err := calc.Calculate(base)
		require.NoError(t, err)

		net := Net(CapturedTotals{Gross: base, Fees: b.Fees, Gst: b.Gst})
		assert.True(t, net.Equal(b.HostNet), "amount %s: host net %s, payout net %s", amount, b.HostNet, net)
	}

	b, err := calc.Calculate(decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.Equal(t, "88.20", b.HostNet.StringFixed(2))

	full, err := NewFeeCalculator(100, 100)
	require.NoError(t, err)
	b, err = full.Calculate(decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.True(t, b.HostNet.IsZero())
}

func TestNewFeeCalculator_RejectsOutOfRange(t *testing.T) {
	_, err := NewFeeCalculator(-1, 18)
	assert.Error(t, err)

	_, err = NewFeeCalculator(5, 101)
	assert.Error(t, err)
}

func TestNet(t *testing.T) {
	totals := CapturedTotals{
		Gross: decimal.NewFromInt(1059),
		Fees:  decimal.NewFromInt(50),
		Gst:   decimal.NewFromInt(9),
	}
	assert.Equal(t, "1000.00", Net(totals).StringFixed(2))

	totals.Gross = decimal.NewFromInt(10)
	assert.True(t, Net(totals).IsZero())
}

func TestStatusChange_Validate(t *testing.T) {
	assert.NoError(t, (&StatusChange{Status: StatusCompleted, Reference: "pout_123"}).Validate())
	assert.True(t, errors.Is((&StatusChange{Status: "Paid"}).Validate(), apperr.ErrInvalidInput))
}
