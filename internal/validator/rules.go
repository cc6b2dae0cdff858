package validator

import (
	"log"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var (
	// "GERMANY", "united-kingdom", "Czech Republic"
	countryCodePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z \-]{1,59}$`)
)

// maxCoverageLen - метки из CSV бывают длинными: "Full (incl. stipend)", "100% Tuition + Living"
const maxCoverageLen = 60

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// без правила приложение запускать нельзя
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-coverage': метка покрытия стипендии (Full, Partial, ...)
	mustRegister("is-coverage", validateCoverage)

	// 'is-country-code': код страны справочника виз (GERMANY, FRANCE, ...)
	mustRegister("is-country-code", validateCountryCode)
}

// --- Функции валидации ---

func validateCoverage(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' обрабатывает пустые
	}
	if strings.TrimSpace(value) == "" || utf8.RuneCountInString(value) > maxCoverageLen {
		return false
	}
	for _, r := range value {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

func validateCountryCode(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return countryCodePattern.MatchString(value)
}
