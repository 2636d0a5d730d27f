//go:build unit

package validation_test

import (
	"testing"

	"lab-dashboard/internal/handler/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slotForm struct {
	Date  string  `binding:"required,civildate"`
	Start string  `binding:"required,clocktime"`
	End   *string `binding:"omitempty,clocktime"`
}

func TestRegister(t *testing.T) {
	require.NoError(t, validation.Register())
	require.NoError(t, validation.Register(), "second call is a no-op")

	end := "00:00"
	cases := []struct {
		name  string
		form  slotForm
		valid bool
	}{
		{name: "valid slot", form: slotForm{Date: "2024-06-01", Start: "09:00", End: &end}, valid: true},
		{name: "end omitted", form: slotForm{Date: "2024-06-01", Start: "23:59"}, valid: true},
		{name: "unpadded date", form: slotForm{Date: "2024-6-1", Start: "09:00"}},
		{name: "impossible date", form: slotForm{Date: "2024-02-30", Start: "09:00"}},
		{name: "hour 24", form: slotForm{Date: "2024-06-01", Start: "24:00"}},
		{name: "seconds", form: slotForm{Date: "2024-06-01", Start: "09:00:00"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(tc.form)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
