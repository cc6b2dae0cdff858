package validator

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError - ошибки запроса в виде "json-поле" -> "сообщение".
type ValidationError struct {
	Errors map[string]string
}

// Error перечисляет поля в алфавитном порядке, чтобы текст был стабильным.
func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("field '%s': %s", field, e.Errors[field]))
	}
	return "Validation failed: " + strings.Join(parts, "; ")
}

// Validator проверяет DTO профиля, финансовых запросов и фильтров стипендий.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// В сообщениях клиенту нужны имена из json-тегов (max_budget, test_score), а не из Go.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			// query/uri DTO без json-тега
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("uri"), ",", 2)[0]
		}
		return name
	})

	registerCustomRules(v)

	return &Validator{validate: v}
}

// Validate возвращает *ValidationError для ошибок правил и исходную ошибку во всех прочих случаях.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	result := make(map[string]string, len(fieldErrors))
	for _, fe := range fieldErrors {
		result[fe.Field()] = message(fe)
	}
	return &ValidationError{Errors: result}
}

// fixedMessages - теги, сообщение которых не зависит от параметра
var fixedMessages = map[string]string{
	"required":        "This field is required",
	"url":             "Must be a valid URL",
	"is-coverage":     "Must be a coverage label such as Full or Partial",
	"is-country-code": "Must be a country code such as GERMANY",
}

// paramMessages - шаблоны с параметром тега (gt=0, lte=4, ...)
var paramMessages = map[string]string{
	"gt":       "Must be greater than %s",
	"gte":      "Must be at least %s",
	"lte":      "Must be at most %s",
	"max":      "Must be at most %s",
	"len":      "Must be exactly %s items/characters long",
	"gtefield": "Must not be less than %s",
}

func message(fe validator.FieldError) string {
	if msg, ok := fixedMessages[fe.Tag()]; ok {
		return msg
	}
	if tmpl, ok := paramMessages[fe.Tag()]; ok {
		return fmt.Sprintf(tmpl, fe.Param())
	}

	switch fe.Tag() {
	case "min":
		switch fe.Kind() {
		case reflect.String, reflect.Slice, reflect.Map:
			return fmt.Sprintf("Must be at least %s items/characters long", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	}
	return fmt.Sprintf("Invalid value (failed on '%s' tag)", fe.Tag())
}
