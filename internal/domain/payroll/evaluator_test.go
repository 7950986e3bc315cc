package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barberdesk/internal/core/types"
)

func money(s string) types.Money {
	return types.MustMoney(s)
}

func TestEvaluatePercentage(t *testing.T) {
	terms := PercentageTerms{ServicePct: money("50"), ProductPct: money("30")}

	f, err := Evaluate(terms, GoalBonus{}, money("1000"), money("200"))
	require.NoError(t, err)

	assert.True(t, f.CommissionServices.Equal(money("500")), "commissionServices = %s", f.CommissionServices)
	assert.True(t, f.CommissionProducts.Equal(money("60")), "commissionProducts = %s", f.CommissionProducts)
	assert.True(t, f.RentDeducted.IsZero())
	assert.True(t, f.Bonus.IsZero())
	assert.True(t, f.GrossPayable.Equal(money("560")), "grossPayable = %s", f.GrossPayable)
	assert.True(t, f.TotalRevenue.Equal(money("1200")))
}

func TestEvaluatePercentagePrecision(t *testing.T) {
	// 33.33% of 99.99 keeps full precision until persistence rounding.
	terms := PercentageTerms{ServicePct: money("33.33"), ProductPct: money("0")}

	f, err := Evaluate(terms, GoalBonus{}, money("99.99"), money("0"))
	require.NoError(t, err)

	assert.True(t, f.CommissionServices.Equal(money("33.326667")),
		"commissionServices = %s", f.CommissionServices)
	assert.Equal(t, "33.33", types.FormatMoney(types.RoundMoney(f.CommissionServices)))
}

func TestEvaluateChairRent(t *testing.T) {
	terms := ChairRentTerms{RentAmount: money("300"), ProductPct: money("30")}

	t.Run("service revenue below rent floor is never negative", func(t *testing.T) {
		f, err := Evaluate(terms, GoalBonus{}, money("250"), money("0"))
		require.NoError(t, err)

		assert.True(t, f.CommissionServices.IsZero(), "commissionServices = %s", f.CommissionServices)
		assert.True(t, f.RentDeducted.Equal(money("300")))
	})

	t.Run("barber keeps revenue above the floor", func(t *testing.T) {
		f, err := Evaluate(terms, GoalBonus{}, money("1000"), money("100"))
		require.NoError(t, err)

		assert.True(t, f.CommissionServices.Equal(money("700")))
		assert.True(t, f.CommissionProducts.Equal(money("30")))
		assert.True(t, f.RentDeducted.Equal(money("300")))
		assert.True(t, f.GrossPayable.Equal(money("430")), "grossPayable = %s", f.GrossPayable)
	})
}

func TestEvaluateFixedMonthly(t *testing.T) {
	terms := FixedMonthlyTerms{MonthlyAmount: money("1500"), ProductPct: money("10")}

	// Flat amount regardless of how little was sold.
	f, err := Evaluate(terms, GoalBonus{}, money("80"), money("50"))
	require.NoError(t, err)

	assert.True(t, f.CommissionServices.Equal(money("1500")))
	assert.True(t, f.CommissionProducts.Equal(money("5")))
	assert.True(t, f.RentDeducted.IsZero())
	assert.True(t, f.GrossPayable.Equal(money("1505")))
}

func TestEvaluateGoalBonus(t *testing.T) {
	terms := PercentageTerms{ServicePct: money("40"), ProductPct: money("20")}

	tests := []struct {
		name           string
		goal           GoalBonus
		serviceRevenue string
		productRevenue string
		wantBonus      string
	}{
		{
			name:           "goal reached grants bonus on total revenue",
			goal:           GoalBonus{GoalAmount: money("1000"), BonusPct: money("5")},
			serviceRevenue: "900",
			productRevenue: "100",
			wantBonus:      "50",
		},
		{
			name:           "goal missed grants nothing",
			goal:           GoalBonus{GoalAmount: money("1000"), BonusPct: money("5")},
			serviceRevenue: "900",
			productRevenue: "99",
			wantBonus:      "0",
		},
		{
			name:           "zero goal never grants bonus",
			goal:           GoalBonus{GoalAmount: money("0"), BonusPct: money("5")},
			serviceRevenue: "100000",
			productRevenue: "0",
			wantBonus:      "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Evaluate(terms, tt.goal, money(tt.serviceRevenue), money(tt.productRevenue))
			require.NoError(t, err)
			assert.True(t, f.Bonus.Equal(money(tt.wantBonus)), "bonus = %s, want %s", f.Bonus, tt.wantBonus)
		})
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	terms := ChairRentTerms{RentAmount: money("450.50"), ProductPct: money("12.5")}
	goal := GoalBonus{GoalAmount: money("2000"), BonusPct: money("3")}

	first, err := Evaluate(terms, goal, money("2100.75"), money("310.20"))
	require.NoError(t, err)
	second, err := Evaluate(terms, goal, money("2100.75"), money("310.20"))
	require.NoError(t, err)

	assert.True(t, first.GrossPayable.Equal(second.GrossPayable))
	assert.True(t, first.Bonus.Equal(second.Bonus))
	assert.True(t, first.CommissionServices.Equal(second.CommissionServices))
}

type bogusTerms struct{}

func (bogusTerms) Kind() PolicyKind { return PolicyKind("bogus") }

func TestEvaluateRejectsUnknownTerms(t *testing.T) {
	_, err := Evaluate(bogusTerms{}, GoalBonus{}, money("1"), money("1"))
	require.Error(t, err)
}
