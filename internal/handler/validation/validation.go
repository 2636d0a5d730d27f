package validation

import (
	"sync"

	"lab-dashboard/internal/domain/availability"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	TagCivilDate = "civildate"
	TagClockTime = "clocktime"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// Register installs the custom tags on gin's binding validator. Safe to call repeatedly.
func Register() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if registerErr = v.RegisterValidation(TagCivilDate, civilDate); registerErr != nil {
			return
		}
		registerErr = v.RegisterValidation(TagClockTime, clockTime)
	})
	return registerErr
}

func civilDate(fl validator.FieldLevel) bool {
	_, err := availability.ParseCivilDate(fl.Field().String())
	return err == nil
}

func clockTime(fl validator.FieldLevel) bool {
	_, err := availability.ParseCivilTime(fl.Field().String())
	return err == nil
}
