package algorithms

import (
	"strings"
	"unicode"

	"uniadvisor_backend/internal/models"
)

// minTokenLen - слова короче не участвуют в сопоставлении направления ("of", "ai", "&")
const minTokenLen = 3

// FieldTokens разбивает направление на слова в нижнем регистре длиной больше двух символов
func FieldTokens(field string) []string {
	words := strings.FieldsFunc(strings.ToLower(field), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if len([]rune(w)) >= minTokenLen {
			tokens = append(tokens, w)
		}
	}
	return tokens
}

// eligibilityRules - предрасчитанные ограничения профиля, чтобы не токенизировать поле на каждой записи
type eligibilityRules struct {
	country     string
	fieldTokens []string
	// fieldWords - направление только из коротких слов ("AI", "IT"), сравнивается целыми словами
	fieldWords []string
	profile    Profile
}

func newEligibilityRules(p Profile) eligibilityRules {
	r := eligibilityRules{profile: p}
	if p.HasCountry() {
		r.country = strings.ToLower(strings.TrimSpace(p.Country))
	}
	if p.HasField() {
		r.fieldTokens = FieldTokens(p.Field)
		if len(r.fieldTokens) == 0 {
			for w := range FieldWords(strings.ToLower(p.Field)) {
				r.fieldWords = append(r.fieldWords, w)
			}
		}
	}
	return r
}

func (r eligibilityRules) allows(u models.University) bool {
	if r.country != "" && strings.ToLower(strings.TrimSpace(u.Country)) != r.country {
		return false
	}
	if len(r.fieldTokens) > 0 && !containsAny(strings.ToLower(u.Field), r.fieldTokens) {
		return false
	}
	if len(r.fieldWords) > 0 && !hasAnyWord(FieldWords(strings.ToLower(u.Field)), r.fieldWords) {
		return false
	}
	if r.profile.GPA > 0 && u.MinGPA > r.profile.GPA {
		return false
	}
	if r.profile.TestScore > 0 && u.MinTestScore > r.profile.TestScore {
		return false
	}
	if r.profile.Budget > 0 && u.AnnualFee > r.profile.Budget {
		return false
	}
	return true
}

func containsAny(s string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

func hasAnyWord(words map[string]struct{}, want []string) bool {
	for _, w := range want {
		if _, ok := words[w]; ok {
			return true
		}
	}
	return false
}

// IsEligible проверяет одну запись на жёсткие ограничения профиля
func IsEligible(u models.University, p Profile) bool {
	return newEligibilityRules(p).allows(u)
}

// FilterEligible возвращает записи, прошедшие все ограничения, в порядке каталога.
// Исходный срез не изменяется.
func FilterEligible(catalog []models.University, p Profile) []models.University {
	rules := newEligibilityRules(p)
	out := make([]models.University, 0, len(catalog))
	for _, u := range catalog {
		if rules.allows(u) {
			out = append(out, u)
		}
	}
	return out
}
