package checkout

import (
	"beeos/internal/shows"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations installs checkout-specific binding rules on gin's
// validator engine. Safe to call more than once.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("seatlabel", validSeatLabel)
	}
}

// validSeatLabel accepts chair labels like "A1" or "f12"
func validSeatLabel(fl validator.FieldLevel) bool {
	_, _, err := shows.ParseChairNumber(fl.Field().String())
	return err == nil
}
