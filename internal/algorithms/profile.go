package algorithms

import "strings"

// Profile - нормализованный профиль студента.
// Нулевое или отрицательное число означает "ограничения нет".
type Profile struct {
	GPA       float64
	TestScore float64
	Budget    float64
	Country   string
	Field     string
}

// NeutralProfile подставляется в скоринг вместо отсутствующих значений
var NeutralProfile = Profile{
	GPA:       3.2,
	TestScore: 6.5,
	Budget:    15000,
}

// WithDefaults возвращает копию профиля, где отсутствующие числа заменены нейтральными
func (p Profile) WithDefaults() Profile {
	if p.GPA <= 0 {
		p.GPA = NeutralProfile.GPA
	}
	if p.TestScore <= 0 {
		p.TestScore = NeutralProfile.TestScore
	}
	if p.Budget <= 0 {
		p.Budget = NeutralProfile.Budget
	}
	return p
}

var (
	anyCountry = map[string]struct{}{
		"":               {},
		"all":            {},
		"all europe":     {},
		"select country": {},
	}
	anyField = map[string]struct{}{
		"":             {},
		"all":          {},
		"any":          {},
		"all fields":   {},
		"select field": {},
	}
)

// HasCountry - страна задана и не является значением "любая"
func (p Profile) HasCountry() bool {
	_, isAny := anyCountry[strings.ToLower(strings.TrimSpace(p.Country))]
	return !isAny
}

// HasField - направление задано и не является значением "любое"
func (p Profile) HasField() bool {
	_, isAny := anyField[strings.ToLower(strings.TrimSpace(p.Field))]
	return !isAny
}
