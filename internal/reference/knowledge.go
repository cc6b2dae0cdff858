package reference

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

//go:embed data/knowledge.yaml
var knowledgeYAML []byte

// KnowledgeEntry - ответ на вопросы, содержащие одно из ключевых слов
type KnowledgeEntry struct {
	ID       string   `yaml:"id" json:"id"`
	Keywords []string `yaml:"keywords" json:"keywords"`
	Answer   string   `yaml:"answer" json:"answer"`
}

// KnowledgeBase - упорядоченный список ответов; побеждает первое совпадение
type KnowledgeBase struct {
	Default string           `yaml:"default"`
	Entries []KnowledgeEntry `yaml:"entries"`
}

// LoadKnowledgeBase parses and validates a knowledge base document
func LoadKnowledgeBase(data []byte) (*KnowledgeBase, error) {
	var kb KnowledgeBase
	if err := yaml.UnmarshalStrict(data, &kb); err != nil {
		return nil, fmt.Errorf("parse knowledge base: %w", err)
	}
	if err := kb.Validate(); err != nil {
		return nil, err
	}
	return &kb, nil
}

// DefaultKnowledgeBase returns the embedded knowledge base
func DefaultKnowledgeBase() *KnowledgeBase {
	kb, err := LoadKnowledgeBase(knowledgeYAML)
	if err != nil {
		panic(err)
	}
	return kb
}

func (kb *KnowledgeBase) Validate() error {
	if strings.TrimSpace(kb.Default) == "" {
		return fmt.Errorf("knowledge base: default answer is empty")
	}

	seen := make(map[string]bool, len(kb.Entries))
	for i, e := range kb.Entries {
		if e.ID == "" {
			return fmt.Errorf("knowledge base: entry %d has no id", i)
		}
		if seen[e.ID] {
			return fmt.Errorf("knowledge base: duplicate entry id %q", e.ID)
		}
		seen[e.ID] = true

		if strings.TrimSpace(e.Answer) == "" {
			return fmt.Errorf("knowledge base: entry %q has no answer", e.ID)
		}
		if len(e.Keywords) == 0 {
			return fmt.Errorf("knowledge base: entry %q has no keywords", e.ID)
		}
		for _, k := range e.Keywords {
			if strings.TrimSpace(k) == "" || k != strings.ToLower(k) {
				return fmt.Errorf("knowledge base: entry %q has invalid keyword %q", e.ID, k)
			}
		}
	}
	return nil
}

// Answer returns the answer for a query and the id of the entry that matched.
// The id is empty when the default answer is used.
func (kb *KnowledgeBase) Answer(query string) (string, string) {
	q := strings.ToLower(query)
	for _, e := range kb.Entries {
		for _, k := range e.Keywords {
			if strings.Contains(q, k) {
				return e.Answer, e.ID
			}
		}
	}
	return kb.Default, ""
}
