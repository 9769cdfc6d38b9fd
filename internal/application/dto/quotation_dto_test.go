package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/o2d-pipeline-api/internal/application/dto"
)

func TestAmount_CoercionDeEntrada(t *testing.T) {
	tests := []struct {
		raw, want string
	}{
		{`12.5`, "12.5"},
		{`"1,200.50"`, "1200.5"},
		{`""`, "0"},
		{`null`, "0"},
		{`"abc"`, "0"},
		{`"-3"`, "-3"},
	}
	for _, tt := range tests {
		var in dto.QuotationItemInput
		require.NoError(t, json.Unmarshal([]byte(`{"quantity":`+tt.raw+`}`), &in), tt.raw)
		assert.Equal(t, tt.want, in.Quantity.String(), tt.raw)
	}
}

func TestAmount_JSONInvalido(t *testing.T) {
	var in dto.QuotationItemInput
	assert.Error(t, json.Unmarshal([]byte(`{"quantity":{`), &in))
}

func TestAmount_TarifaNulaQuedaNil(t *testing.T) {
	var in dto.PreviewQuotationRequest
	require.NoError(t, json.Unmarshal([]byte(`{"tax_mode":"IGST","items":[]}`), &in))
	assert.Equal(t, "IGST", in.TaxMode)
	assert.Nil(t, in.IGSTRate)
}
