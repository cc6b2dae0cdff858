package algorithms

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultCountry - метка для пустой страны
const DefaultCountry = "Default"

// countryAliases - написания, которые после title case не совпадают с ключами таблиц
var countryAliases = map[string]string{
	"Uk":              "UK",
	"U.k.":            "UK",
	"United Kingdom":  "UK",
	"Great Britain":   "UK",
	"Holland":         "Netherlands",
	"The Netherlands": "Netherlands",
	"Deutschland":     "Germany",
}

// NormalizeCountry приводит страну к виду ключей справочников: "germany " -> "Germany", "uk" -> "UK".
// Пустая строка даёт DefaultCountry.
func NormalizeCountry(country string) string {
	country = strings.Join(strings.Fields(country), " ")
	if country == "" {
		return DefaultCountry
	}
	// cases.Caser не потокобезопасен, поэтому создаётся на вызов
	titled := cases.Title(language.English).String(country)
	if alias, ok := countryAliases[titled]; ok {
		return alias
	}
	return titled
}
