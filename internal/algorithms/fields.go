package algorithms

import (
	"fmt"
	"strings"
)

// FieldCategory - укрупнённое направление для таблицы зарплат
type FieldCategory string

const (
	FieldComputerScience FieldCategory = "Computer Science / AI"
	FieldEngineering     FieldCategory = "Engineering"
	FieldBusiness        FieldCategory = "Business / MBA"
	FieldMedicine        FieldCategory = "Medicine / Health"
	FieldNaturalSciences FieldCategory = "Natural Sciences"
	FieldLaw             FieldCategory = "Law"
	FieldArts            FieldCategory = "Arts / Design"
	// FieldUnclassified - направление не распознано, используется усреднённая зарплата
	FieldUnclassified FieldCategory = "Unclassified"
)

// fieldRule - ключевые слова категории.
// Слова до трёх символов ("ai", "it", "mba", "law") сравниваются только целым словом.
type fieldRule struct {
	Category FieldCategory
	Keywords []string
}

// fieldRules проверяются по порядку, первое совпадение выигрывает.
// Computer Science стоит раньше Engineering: "Software Engineering" - это CS.
var fieldRules = []fieldRule{
	{FieldComputerScience, []string{"computer", "software", "data", "informatics", "artificial intelligence", "machine learning", "cyber", "ai", "it"}},
	{FieldEngineering, []string{"engineer", "mechanical", "electrical", "civil", "robotic", "aerospace", "mechatronic", "automotive"}},
	{FieldBusiness, []string{"business", "management", "finance", "marketing", "economics", "accounting", "mba"}},
	{FieldMedicine, []string{"medicine", "medical", "health", "nursing", "pharma", "biomedical", "dentistry"}},
	// без общего "science": "Political Science" и "Social Sciences" не естественные науки
	{FieldNaturalSciences, []string{"physics", "chemistry", "biology", "mathematics", "math", "natural science", "life science", "environmental science", "geoscience", "astronomy"}},
	{FieldLaw, []string{"legal", "law"}},
	{FieldArts, []string{"design", "architecture", "music", "media", "fine art", "arts", "art"}},
}

// shortKeywordLen - ключевые слова не длиннее этого совпадают только целым словом
const shortKeywordLen = 3

// ClassifyField сопоставляет свободный текст направления с категорией.
// Второе значение false означает, что направление не распознано (FieldUnclassified).
func ClassifyField(field string) (FieldCategory, bool) {
	lower := strings.ToLower(strings.TrimSpace(field))
	if lower == "" {
		return FieldUnclassified, false
	}
	words := FieldWords(lower)

	for _, rule := range fieldRules {
		for _, kw := range rule.Keywords {
			if matchesKeyword(lower, words, kw) {
				return rule.Category, true
			}
		}
	}
	return FieldUnclassified, false
}

func matchesKeyword(lower string, words map[string]struct{}, kw string) bool {
	if len(kw) <= shortKeywordLen {
		_, ok := words[kw]
		return ok
	}
	return strings.Contains(lower, kw)
}

// FieldWords - множество всех слов направления (без фильтра по длине)
func FieldWords(lower string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.FieldsFunc(lower, func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9')
	}) {
		words[w] = struct{}{}
	}
	return words
}

// validateFieldRules проверяет таблицы при загрузке пакета:
// непустые ключевые слова в нижнем регистре, без повторов, у каждой категории есть зарплаты с Default.
func validateFieldRules(rules []fieldRule, salaries map[FieldCategory]map[string]float64) error {
	seen := make(map[string]FieldCategory)
	for _, rule := range rules {
		if rule.Category == "" || rule.Category == FieldUnclassified {
			return fmt.Errorf("field rule has invalid category %q", rule.Category)
		}
		if len(rule.Keywords) == 0 {
			return fmt.Errorf("field category %q has no keywords", rule.Category)
		}
		for _, kw := range rule.Keywords {
			if kw == "" || kw != strings.ToLower(strings.TrimSpace(kw)) {
				return fmt.Errorf("field category %q: keyword %q must be trimmed lowercase", rule.Category, kw)
			}
			if prev, dup := seen[kw]; dup {
				return fmt.Errorf("keyword %q is declared for both %q and %q", kw, prev, rule.Category)
			}
			seen[kw] = rule.Category
		}
		if err := validateSalaryRow(rule.Category, salaries); err != nil {
			return err
		}
	}
	return validateSalaryRow(FieldUnclassified, salaries)
}

func validateSalaryRow(category FieldCategory, salaries map[FieldCategory]map[string]float64) error {
	row, ok := salaries[category]
	if !ok {
		return fmt.Errorf("no salary table for field category %q", category)
	}
	if row[DefaultCountry] <= 0 {
		return fmt.Errorf("salary table for %q has no positive %s entry", category, DefaultCountry)
	}
	for country, salary := range row {
		if salary <= 0 {
			return fmt.Errorf("salary for %q in %s must be positive", category, country)
		}
	}
	return nil
}

func init() {
	if err := validateFieldRules(fieldRules, startingSalaries); err != nil {
		panic(err)
	}
}
