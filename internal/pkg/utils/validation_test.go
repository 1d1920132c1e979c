package utils

import (
	"medilabx-service/internal/pkg/dto/requests"
	"medilabx-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct_FieldKeys(t *testing.T) {
	request := &requests.SubmitReport{
		TestResults: []requests.TestResultInput{
			{ParameterID: 1, Value: "14.2"},
			{ParameterID: 2},
		},
	}

	err := ValidateStruct(request)
	require.Error(t, err)

	fields := exceptions.ValidationFieldErrors(err)
	assert.Equal(t, map[string]string{"test_results[1].value": "value is required"}, fields)
}

func TestValidateStruct_Decimal(t *testing.T) {
	t.Run("Valid Amounts", func(t *testing.T) {
		err := ValidateStruct(&requests.PackageSavings{
			RegularPrices: []string{"150000", "99.95"},
			PackagePrice:  "200000.50",
		})
		assert.NoError(t, err)
	})

	t.Run("Invalid Amount", func(t *testing.T) {
		err := ValidateStruct(&requests.PackageSavings{
			RegularPrices: []string{"150000", "a lot"},
			PackagePrice:  "1",
		})
		require.Error(t, err)

		fields := exceptions.ValidationFieldErrors(err)
		assert.Equal(t, "regular_prices[1] must be a decimal amount", fields["regular_prices[1]"])
	})
}

func TestValidateStruct_OneOf(t *testing.T) {
	err := ValidateStruct(&requests.CreateBooking{
		PatientID:      1,
		TestID:         2,
		DeliveryMethod: "pigeon",
	})
	require.Error(t, err)

	fields := exceptions.ValidationFieldErrors(err)
	assert.Equal(t, "delivery_method must be one of [email, sms, in_person, print]", fields["delivery_method"])
}
