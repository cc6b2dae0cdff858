package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKnowledgeBase(t *testing.T) {
	kb := DefaultKnowledgeBase()

	tests := []struct {
		query  string
		wantID string
		answer string
	}{
		{"Is FRANCE good for AI?", "france", "France offers affordable education with strong AI programs."},
		{"what ielts do I need", "ielts", "Most universities require IELTS between 6.0 and 7.5."},
		{"any scholarship options?", "scholarship", "Scholarships are available through Erasmus+ and Campus France."},
		{"france ielts", "france", "France offers affordable education with strong AI programs."},
		{"hello", "", "Please provide more details about your query."},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			answer, id := kb.Answer(tt.query)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.answer, answer)
		})
	}
}

func TestLoadKnowledgeBase_Validation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no default", "entries: [{id: a, keywords: [x], answer: y}]"},
		{"duplicate id", "default: d\nentries: [{id: a, keywords: [x], answer: y}, {id: a, keywords: [z], answer: w}]"},
		{"no keywords", "default: d\nentries: [{id: a, keywords: [], answer: y}]"},
		{"upper-case keyword", "default: d\nentries: [{id: a, keywords: [France], answer: y}]"},
		{"no answer", "default: d\nentries: [{id: a, keywords: [x]}]"},
		{"unknown field", "default: d\nentries: [{id: a, keywords: [x], answer: y, weight: 2}]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadKnowledgeBase([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestDefaultVisaCatalog(t *testing.T) {
	v := DefaultVisaCatalog()

	req, ok := v.Requirements(" germany ")
	require.True(t, ok)
	assert.Equal(t, "Germany", req.CountryName)
	assert.Equal(t, "National Visa (D-Type) for Study", req.VisaType)
	require.Len(t, req.Categories, 3)
	assert.Equal(t, "blocked_account", req.Categories[1].Items[0].ID)

	_, ok = v.Requirements("SPAIN")
	assert.False(t, ok)

	assert.Equal(t, []VisaCountry{
		{Code: "FRANCE", Name: "France"},
		{Code: "GERMANY", Name: "Germany"},
		{Code: "ITALY", Name: "Italy"},
	}, v.Countries())
}

func TestLoadVisaCatalog_Validation(t *testing.T) {
	_, err := LoadVisaCatalog([]byte("germany: {country_name: Germany, visa_type: D, categories: [{title: A, items: [{id: p}]}]}"))
	assert.Error(t, err, "lower-case code")

	_, err = LoadVisaCatalog([]byte("GERMANY: {country_name: Germany, visa_type: D, categories: []}"))
	assert.Error(t, err, "no categories")

	_, err = LoadVisaCatalog([]byte("GERMANY: {country_name: Germany, visa_type: D, categories: [{title: A, items: []}]}"))
	assert.Error(t, err, "empty category")
}
