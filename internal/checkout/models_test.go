package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSupportedBank(t *testing.T) {
	assert.True(t, IsSupportedBank("bca"))
	assert.True(t, IsSupportedBank("mandiri"))
	assert.True(t, IsSupportedBank("bni"))
	assert.True(t, IsSupportedBank("BCA"), "bank codes are case-insensitive")
	assert.False(t, IsSupportedBank("paypal"))
	assert.False(t, IsSupportedBank(""))
}

func TestPaymentMethodLabel(t *testing.T) {
	assert.Equal(t, "Bank Transfer - BCA", PaymentMethodLabel("bca"))
	assert.Equal(t, "Bank Transfer - MANDIRI", PaymentMethodLabel("mandiri"))
}

func TestBankAccountsHolder(t *testing.T) {
	for code, acc := range BankAccounts {
		assert.Equal(t, code, acc.Code)
		assert.Equal(t, "PT. Beeos Cinema", acc.AccountHolder)
		assert.NotEmpty(t, acc.AccountNumber)
	}
}

func TestIsValidPaymentStatus(t *testing.T) {
	for _, valid := range []string{"Pending", "Paid", "Failed", "Expired"} {
		assert.True(t, IsValidPaymentStatus(valid), valid)
	}
	for _, invalid := range []string{"pending", "Cancelled", "", "Done"} {
		assert.False(t, IsValidPaymentStatus(invalid), invalid)
	}
}
