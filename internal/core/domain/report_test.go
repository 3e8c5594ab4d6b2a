package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jakiurshovon/Purchase-Web-App/internal/apperrors"
	"github.com/jakiurshovon/Purchase-Web-App/internal/core/domain"
)

func TestParseDimension(t *testing.T) {
	tests := []struct {
		input   string
		want    domain.Dimension
		wantErr bool
	}{
		{input: "exchange_house", want: domain.DimensionExchangeHouse},
		{input: "region", want: domain.DimensionRegion},
		{input: "country", want: domain.DimensionCountry},
		{input: "currency", want: domain.DimensionCurrency},
		{input: "", wantErr: true},
		{input: "date", wantErr: true},
		{input: "Currency", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			dim, err := domain.ParseDimension(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, dim)
		})
	}
}

func TestDimensionLabel(t *testing.T) {
	assert.Equal(t, "Exchange House", domain.DimensionExchangeHouse.Label())
	assert.Equal(t, "Region", domain.DimensionRegion.Label())
	assert.Equal(t, "Country", domain.DimensionCountry.Label())
	assert.Equal(t, "Currency", domain.DimensionCurrency.Label())
}
