package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentProgress(t *testing.T) {
	debt := Debt{TotalOwed: decimal.NewFromInt(1000), AmountPaid: decimal.NewFromInt(250)}
	assert.Equal(t, 25.0, debt.PaymentProgress())
}

func TestPaymentProgress_RoundsHalfUp(t *testing.T) {
	// 1/3 paid: 0.3333 * 100 = 33.33
	debt := Debt{TotalOwed: decimal.NewFromInt(3), AmountPaid: decimal.NewFromInt(1)}
	assert.InDelta(t, 33.33, debt.PaymentProgress(), 0.0001)
}

func TestPaymentProgress_ZeroTotalOwed(t *testing.T) {
	debt := Debt{TotalOwed: decimal.Zero, AmountPaid: decimal.Zero}
	assert.Equal(t, 0.0, debt.PaymentProgress())
}

func TestIsPaidOff_Boundary(t *testing.T) {
	debt := Debt{TotalOwed: decimal.NewFromInt(1000), AmountPaid: decimal.NewFromInt(1000)}
	assert.True(t, debt.IsPaidOff())

	debt.AmountPaid = decimal.NewFromFloat(999.99)
	assert.False(t, debt.IsPaidOff())
}

func TestDebtMarshalJSON_InlinesDerivedFields(t *testing.T) {
	debt := Debt{
		ID:             1,
		UserID:         1,
		Name:           "Car Loan",
		TotalOwed:      decimal.NewFromInt(1000),
		AmountPaid:     decimal.NewFromInt(250),
		MonthlyPayment: decimal.NewFromInt(100),
	}

	data, err := json.Marshal(debt)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 750.0, decoded["remainingBalance"])
	assert.Equal(t, 25.0, decoded["paymentProgress"])
	// Money serializes as bare numbers, not strings.
	assert.Equal(t, 1000.0, decoded["totalOwed"])
}

func TestDebtValidate_AmountPaidBounds(t *testing.T) {
	debt := Debt{
		Name:           "Car Loan",
		TotalOwed:      decimal.NewFromInt(1000),
		AmountPaid:     decimal.NewFromInt(1001),
		MonthlyPayment: decimal.NewFromInt(100),
	}
	err := debt.Validate()
	require.Error(t, err)
	assert.Equal(t, "Amount paid cannot exceed total owed", err.Error())

	debt.AmountPaid = decimal.NewFromInt(-1)
	err = debt.Validate()
	require.Error(t, err)
	assert.Equal(t, "Amount paid cannot be negative", err.Error())

	debt.AmountPaid = decimal.NewFromInt(1000)
	assert.NoError(t, debt.Validate())
}
