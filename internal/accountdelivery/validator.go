package accountdelivery

import (
	"github.com/go-playground/validator/v10"
)

// ValidAccountNumber validates that a field is a 10-digit account number.
var ValidAccountNumber validator.Func = func(fl validator.FieldLevel) bool {
	n, ok := fl.Field().Interface().(string)
	if !ok || len(n) != 10 {
		return false
	}

	for i := 0; i < len(n); i++ {
		if n[i] < '0' || n[i] > '9' {
			return false
		}
	}

	return true
}
