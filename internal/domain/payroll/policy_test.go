package payroll

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barberdesk/internal/core/apperror"
	"barberdesk/internal/core/id"
	"barberdesk/internal/core/types"
)

func TestPolicyValidate(t *testing.T) {
	barberID := id.New()

	valid := func() *CommissionPolicy {
		p := NewCommissionPolicy(barberID, KindPercentage)
		p.ServicePct = money("50")
		p.ProductPct = money("30")
		return p
	}

	tests := []struct {
		name    string
		mutate  func(*CommissionPolicy)
		wantErr bool
	}{
		{name: "valid percentage policy", mutate: func(p *CommissionPolicy) {}},
		{name: "missing barber", mutate: func(p *CommissionPolicy) { p.BarberID = id.Nil() }, wantErr: true},
		{name: "unknown kind", mutate: func(p *CommissionPolicy) { p.Kind = "aluguel" }, wantErr: true},
		{name: "percentage above 100", mutate: func(p *CommissionPolicy) { p.ServicePct = money("101") }, wantErr: true},
		{name: "negative percentage", mutate: func(p *CommissionPolicy) { p.BonusPct = money("-1") }, wantErr: true},
		{name: "negative rent", mutate: func(p *CommissionPolicy) { p.RentAmount = money("-10") }, wantErr: true},
		{name: "negative goal", mutate: func(p *CommissionPolicy) { p.GoalAmount = money("-500") }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.mutate(p)
			err := p.Validate(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				appErr, ok := apperror.AsAppError(err)
				require.True(t, ok)
				assert.Equal(t, apperror.CodeValidation, appErr.Code)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestPolicyTermsProjection(t *testing.T) {
	barberID := id.New()

	t.Run("percentage", func(t *testing.T) {
		p := NewCommissionPolicy(barberID, KindPercentage)
		p.ServicePct = money("45")
		p.ProductPct = money("15")

		terms, err := p.Terms()
		require.NoError(t, err)
		pct, ok := terms.(PercentageTerms)
		require.True(t, ok)
		assert.True(t, pct.ServicePct.Equal(money("45")))
		assert.True(t, pct.ProductPct.Equal(money("15")))
	})

	t.Run("fixed monthly", func(t *testing.T) {
		p := NewCommissionPolicy(barberID, KindFixedMonthly)
		p.MonthlyAmount = money("1800")
		p.ProductPct = money("10")

		terms, err := p.Terms()
		require.NoError(t, err)
		fixed, ok := terms.(FixedMonthlyTerms)
		require.True(t, ok)
		assert.True(t, fixed.MonthlyAmount.Equal(money("1800")))
	})

	t.Run("chair rent", func(t *testing.T) {
		p := NewCommissionPolicy(barberID, KindChairRent)
		p.RentAmount = money("600")
		p.ProductPct = money("25")

		terms, err := p.Terms()
		require.NoError(t, err)
		rent, ok := terms.(ChairRentTerms)
		require.True(t, ok)
		assert.True(t, rent.RentAmount.Equal(money("600")))
	})

	t.Run("unknown kind rejected before any read", func(t *testing.T) {
		p := NewCommissionPolicy(barberID, PolicyKind("hourly"))
		_, err := p.Terms()
		require.Error(t, err)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeValidation, appErr.Code)
	})
}

func TestPolicySupersede(t *testing.T) {
	p := NewCommissionPolicy(id.New(), KindPercentage)
	p.IsActive = true
	end := types.MustDate("2026-08-31")

	p.Supersede(end)

	assert.False(t, p.IsActive)
	require.NotNil(t, p.EffectiveTo)
	assert.True(t, p.EffectiveTo.Equal(end))
}
