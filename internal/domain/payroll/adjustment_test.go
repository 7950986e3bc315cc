package payroll

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barberdesk/internal/core/id"
	"barberdesk/internal/core/types"
)

func TestAdjustmentValidate(t *testing.T) {
	barberID := id.New()
	date := types.MustDate("2026-08-15")

	tests := []struct {
		name    string
		adj     *Adjustment
		wantErr bool
	}{
		{
			name: "valid discount",
			adj:  NewAdjustment(barberID, AdjustmentDiscount, money("50"), date),
		},
		{
			name:    "missing barber",
			adj:     NewAdjustment(id.Nil(), AdjustmentFine, money("10"), date),
			wantErr: true,
		},
		{
			name:    "unknown kind",
			adj:     NewAdjustment(barberID, AdjustmentKind("refund"), money("10"), date),
			wantErr: true,
		},
		{
			name:    "zero amount",
			adj:     NewAdjustment(barberID, AdjustmentAdvance, money("0"), date),
			wantErr: true,
		},
		{
			name:    "negative amount",
			adj:     NewAdjustment(barberID, AdjustmentBonus, money("-5"), date),
			wantErr: true,
		},
		{
			name:    "missing effective date",
			adj:     NewAdjustment(barberID, AdjustmentDiscount, money("5"), types.Date{}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.adj.Validate(context.Background())
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNetTotal(t *testing.T) {
	barberID := id.New()
	date := types.MustDate("2026-08-10")

	mk := func(kind AdjustmentKind, amount string) *Adjustment {
		return NewAdjustment(barberID, kind, money(amount), date)
	}

	tests := []struct {
		name string
		adjs []*Adjustment
		want string
	}{
		{name: "empty ledger nets to zero", adjs: nil, want: "0"},
		{
			name: "discounts and fines increase the deduction",
			adjs: []*Adjustment{mk(AdjustmentDiscount, "50"), mk(AdjustmentFine, "20")},
			want: "70",
		},
		{
			name: "advances and manual bonuses decrease it",
			adjs: []*Adjustment{mk(AdjustmentAdvance, "100"), mk(AdjustmentBonus, "30")},
			want: "-130",
		},
		{
			name: "mixed kinds net out",
			adjs: []*Adjustment{
				mk(AdjustmentDiscount, "50"),
				mk(AdjustmentFine, "25.50"),
				mk(AdjustmentAdvance, "40"),
				mk(AdjustmentBonus, "10.25"),
			},
			want: "25.25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NetTotal(tt.adjs)
			assert.True(t, got.Equal(money(tt.want)), "net = %s, want %s", got, tt.want)
		})
	}
}
