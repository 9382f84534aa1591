package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/pageza/recipebook/backend/internal/model"
)

var registerOnce sync.Once

// RegisterValidations adds the custom binding rules used by request types to gin's
// validator. It is safe to call more than once.
func RegisterValidations() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		err = v.RegisterValidation("foodgroup", func(fl validator.FieldLevel) bool {
			return model.IsFoodGroup(fl.Field().String())
		})
	})
	return err
}
