package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barberdesk/internal/core/id"
	"barberdesk/internal/core/types"
	"barberdesk/internal/domain/payroll"
)

func TestFromCalculationMoneyFormatting(t *testing.T) {
	barberID := id.New()
	period := types.Period{
		Start: types.MustDate("2025-06-01"),
		End:   types.MustDate("2025-06-30"),
	}

	calc := payroll.NewCalculation(barberID, period)
	calc.ApplyFigures(payroll.Figures{
		TotalRevenue:       types.MustMoney("1234.5"),
		ServiceRevenue:     types.MustMoney("1000"),
		ProductRevenue:     types.MustMoney("234.5"),
		CommissionServices: types.MustMoney("500.005"),
		CommissionProducts: types.MustMoney("23.45"),
		GrossPayable:       types.MustMoney("523.455"),
	}, types.MustMoney("50"), 7)

	resp := FromCalculation(calc)

	// Every monetary field carries exactly two fractional digits.
	assert.Equal(t, "1234.50", resp.TotalRevenue)
	assert.Equal(t, "1000.00", resp.ServiceRevenue)
	assert.Equal(t, "234.50", resp.ProductRevenue)
	assert.Equal(t, "500.01", resp.CommissionServices)
	assert.Equal(t, "23.45", resp.CommissionProducts)
	assert.Equal(t, "0.00", resp.RentDeducted)
	assert.Equal(t, "0.00", resp.Bonus)
	assert.Equal(t, "523.46", resp.GrossPayable)
	assert.Equal(t, "50.00", resp.AdjustmentTotal)
	assert.Equal(t, "473.46", resp.NetPayable)
	assert.Equal(t, 7, resp.SaleCount)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	// Dates serialize as plain YYYY-MM-DD strings.
	assert.Equal(t, "2025-06-01", decoded["periodStart"])
	assert.Equal(t, "2025-06-30", decoded["periodEnd"])
	// Money stays a JSON string on the wire, never a float.
	assert.Equal(t, "473.46", decoded["netPayable"])
}

func TestActivatePolicyRequestToEntity(t *testing.T) {
	barberID := id.New()

	req := ActivatePolicyRequest{
		BarberID:   barberID.String(),
		Kind:       "percentage",
		ServicePct: "50",
		ProductPct: "10",
		GoalAmount: "10000",
		BonusPct:   "5",
	}

	policy, err := req.ToEntity()
	require.NoError(t, err)
	assert.Equal(t, barberID, policy.BarberID)
	assert.Equal(t, payroll.KindPercentage, policy.Kind)
	assert.True(t, policy.ServicePct.Equal(types.MustMoney("50")))
	assert.True(t, policy.GoalAmount.Equal(types.MustMoney("10000")))
	// Omitted amounts default to zero.
	assert.True(t, policy.RentAmount.IsZero())
	assert.True(t, policy.MonthlyAmount.IsZero())
}

func TestActivatePolicyRequestRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		req  ActivatePolicyRequest
	}{
		{
			name: "bad barber id",
			req:  ActivatePolicyRequest{BarberID: "not-a-uuid", Kind: "percentage"},
		},
		{
			name: "unknown kind",
			req:  ActivatePolicyRequest{BarberID: id.New().String(), Kind: "profit_share"},
		},
		{
			name: "unparseable amount",
			req:  ActivatePolicyRequest{BarberID: id.New().String(), Kind: "chair_rent", RentAmount: "12,50"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.ToEntity()
			require.Error(t, err)
		})
	}
}

func TestCreateAdjustmentRequestToEntity(t *testing.T) {
	barberID := id.New()

	req := CreateAdjustmentRequest{
		BarberID:      barberID.String(),
		Kind:          "advance",
		Description:   "mid-month advance",
		Amount:        "200",
		EffectiveDate: types.MustDate("2025-06-15"),
	}

	adj, err := req.ToEntity()
	require.NoError(t, err)
	assert.Equal(t, payroll.AdjustmentAdvance, adj.Kind)
	assert.True(t, adj.Amount.Equal(types.MustMoney("200")))
	assert.Equal(t, types.MustDate("2025-06-15"), adj.EffectiveDate)
	assert.False(t, adj.Applied)
}
