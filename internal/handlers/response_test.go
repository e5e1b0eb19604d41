package handlers

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/ricechain/supply-tracker/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Quantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity string
		wantTag  string
	}{
		{"zero", "0", ""},
		{"three decimals", "1200.125", ""},
		{"trailing zeros", "5.10000", ""},
		{"upper bound exclusive", "100000000000", "dec_lt"},
		{"just below upper bound", "99999999999.999", ""},
		{"negative", "-1", "dec_gte"},
		{"negative beyond float precision", "-1e-400", "dec_gte"},
		{"four decimals", "0.0001", "dec_scale"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := decimal.RequireFromString(tt.quantity)
			req := models.CreateBatchRequest{BatchCode: "BC001", ProductName: "ST25 rice", Quantity: &q}

			err := validate.Struct(&req)
			if tt.wantTag == "" {
				assert.NoError(t, err)
				return
			}

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			require.Len(t, verrs, 1)
			assert.Equal(t, "quantity", verrs[0].Field())
			assert.Equal(t, tt.wantTag, verrs[0].Tag())
		})
	}
}

func TestFieldErrors_Messages(t *testing.T) {
	q := decimal.RequireFromString("1.2345")
	batch := models.CreateBatchRequest{BatchCode: strings.Repeat("B", 51), ProductName: "Rice", Quantity: &q}

	var verrs validator.ValidationErrors
	require.ErrorAs(t, validate.Struct(&batch), &verrs)
	assert.ElementsMatch(t, []models.FieldError{
		{Field: "batch_code", Message: "batch_code must be at most 50 characters"},
		{Field: "quantity", Message: "quantity must have at most 3 decimal places"},
	}, fieldErrors(verrs))

	user := models.RegisterRequest{
		Username: "farmer_an",
		Email:    "an@example.com",
		Password: strings.Repeat("p", 73),
		Role:     models.Role("miller"),
		FullName: "Nguyen Van An",
	}
	require.ErrorAs(t, validate.Struct(&user), &verrs)
	assert.ElementsMatch(t, []models.FieldError{
		{Field: "password", Message: "password must be at most 72 bytes"},
		{Field: "role", Message: "role must be one of: admin farmer mill transport distributor consumer"},
	}, fieldErrors(verrs))
}
