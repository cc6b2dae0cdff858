package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredictAdmission(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		profile     Profile
		chance      AdmissionChance
		probability int
	}{
		{"strong", Profile{GPA: 3.8, TestScore: 8.0, Budget: 25000}, ChanceHigh, 94},
		{"average", Profile{GPA: 3.0, TestScore: 6.0, Budget: 10000}, ChanceMedium, 67},
		{"empty profile", Profile{}, ChanceLow, 0},
		{"only gpa", Profile{GPA: 4.0}, ChanceLow, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PredictAdmission(tt.profile)
			assert.Equal(t, tt.chance, got.Chance)
			assert.Equal(t, tt.probability, got.Probability)
			assert.NotEmpty(t, got.Message)
		})
	}
}
