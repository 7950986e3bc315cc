package sales

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barberdesk/internal/core/id"
	"barberdesk/internal/core/types"
)

func TestSaleAddLineKeepsTotalConsistent(t *testing.T) {
	sale := NewSale(PaymentCash)
	svcID := id.New()
	prodID := id.New()

	sale.AddLine(nil, &svcID, 1, types.MustMoney("45.50"))
	sale.AddLine(&prodID, nil, 3, types.MustMoney("12.00"))

	assert.True(t, sale.Total.Equal(types.MustMoney("81.50")), "total = %s", sale.Total)
	require.NoError(t, sale.Validate(context.Background()))
}

func TestSaleValidate(t *testing.T) {
	svcID := id.New()
	prodID := id.New()

	valid := func() *Sale {
		s := NewSale(PaymentCard)
		s.AddLine(nil, &svcID, 1, types.MustMoney("30"))
		return s
	}

	tests := []struct {
		name   string
		mutate func(*Sale)
	}{
		{name: "unknown payment method", mutate: func(s *Sale) { s.PaymentMethod = "check" }},
		{name: "no lines", mutate: func(s *Sale) { s.Lines = nil }},
		{name: "line with both refs", mutate: func(s *Sale) { s.Lines[0].ProductID = &prodID }},
		{name: "line with neither ref", mutate: func(s *Sale) { s.Lines[0].OfferingID = nil }},
		{name: "non-positive quantity", mutate: func(s *Sale) { s.Lines[0].Quantity = 0 }},
		{name: "subtotal mismatch", mutate: func(s *Sale) { s.Lines[0].Subtotal = types.MustMoney("1") }},
		{name: "total mismatch", mutate: func(s *Sale) { s.Total = types.MustMoney("999") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(s)
			require.Error(t, s.Validate(context.Background()))
		})
	}

	t.Run("valid sale passes", func(t *testing.T) {
		require.NoError(t, valid().Validate(context.Background()))
	})
}
