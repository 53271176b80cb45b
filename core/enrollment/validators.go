package enrollment

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/acadex/backend/core"
)

var (
	weekdayTag  = "weekday"
	weekdayText = "invalid weekday name"

	weekdays = []string{
		"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
	}
)

func init() {
	_ = core.Validate.RegisterValidation(weekdayTag, weekdayValidation)
	core.RegisterCustomTranslation(weekdayTag, weekdayText)
}

func weekdayValidation(fl validator.FieldLevel) bool {
	day := strings.ToLower(fl.Field().String())
	for _, wd := range weekdays {
		if day == wd {
			return true
		}
	}
	return false
}
