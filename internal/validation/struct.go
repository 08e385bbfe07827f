package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FieldError ошибка валидации одного поля
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FieldErrors набор ошибок валидации
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	messages := make([]string, len(e))
	for i, fe := range e {
		messages[i] = fe.Error()
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

var (
	structValidator     *validator.Validate
	structValidatorOnce sync.Once
)

func instance() *validator.Validate {
	structValidatorOnce.Do(func() {
		v := validator.New()
		// в сообщениях используем имена из json тегов
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		structValidator = v
	})
	return structValidator
}

// Struct валидирует структуру по validate-тегам и переводит ошибки в FieldErrors
func Struct(s interface{}) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	result := make(FieldErrors, 0, len(validationErrs))
	for _, fe := range validationErrs {
		result = append(result, FieldError{
			Field:   fe.Field(),
			Message: translate(fe),
		})
	}
	return result
}

func translate(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without":
		return "is required"
	case "min":
		return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
	case "max":
		return fmt.Sprintf("must contain at most %s item(s)", fe.Param())
	case "unique":
		return "must not contain duplicates"
	case "email":
		return "must be a valid email address"
	default:
		return fmt.Sprintf("failed on %q rule", fe.Tag())
	}
}
