package checkout

import (
	"fmt"
	"strings"

	"gemrock-store/models"
)

// ValidateBuyer checks that every buyer field is filled in. No format validation
// is done; the payment fields are never charged.
func ValidateBuyer(b models.BuyerDetails) error {
	fields := []struct {
		name  string
		value string
	}{
		{"fullName", b.FullName},
		{"email", b.Email},
		{"phone", b.Phone},
		{"address", b.Address},
		{"city", b.City},
		{"zipCode", b.ZipCode},
		{"country", b.Country},
		{"cardNumber", b.CardNumber},
		{"expiryDate", b.ExpiryDate},
		{"cvc", b.CVC},
		{"cardHolderName", b.CardHolderName},
	}

	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}
	return nil
}
