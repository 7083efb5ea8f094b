package dto

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// RegisterValidators installs the custom binding rules used by the request DTOs:
// hhmm (24-hour "HH:MM"), datekey ("YYYY-MM-DD") and priority (none|low|medium|high).
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("hhmm", validateClockTime)
	_ = v.RegisterValidation("datekey", validateDateKey)
	_ = v.RegisterValidation("priority", validatePriority)
}

func validateClockTime(fl validator.FieldLevel) bool {
	return entity.IsClockTime(fl.Field().String())
}

func validateDateKey(fl validator.FieldLevel) bool {
	_, err := entity.ParseDateKey(fl.Field().String(), time.UTC)
	return err == nil
}

func validatePriority(fl validator.FieldLevel) bool {
	_, err := entity.ParsePriority(fl.Field().String())
	return err == nil
}
