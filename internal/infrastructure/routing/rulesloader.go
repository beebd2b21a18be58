// Package routing loads department routing tables from YAML.
package routing

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"civicpulse/internal/domain/complaint"
	vo "civicpulse/internal/domain/complaint/valueobjects"
)

type rulesFile struct {
	Fallback string     `yaml:"fallback"`
	Rules    []ruleSpec `yaml:"rules"`
}

type ruleSpec struct {
	Department string   `yaml:"department"`
	Keywords   []string `yaml:"keywords"`
}

// LoadFile builds a classifier from the YAML file at path. An empty path
// yields the built-in table with fallback.
func LoadFile(path string, fallback string) (*complaint.Classifier, error) {
	if path == "" {
		return complaint.NewClassifier(complaint.DefaultRules(), vo.Department(fallback)), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read routing rules %s: %w", path, err)
	}
	return Load(bytes.NewReader(data), fallback)
}

// Load parses a rules document. Rules keep their file order, which is the
// match order. A fallback in the document overrides the one passed in. A
// document with no rules yields the built-in table.
func Load(r io.Reader, fallback string) (*complaint.Classifier, error) {
	var doc rulesFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse routing rules: %w", err)
	}

	if doc.Fallback != "" {
		fallback = doc.Fallback
	}

	if len(doc.Rules) == 0 {
		return complaint.NewClassifier(complaint.DefaultRules(), vo.Department(fallback)), nil
	}

	rules := make([]complaint.Rule, 0, len(doc.Rules))
	for i, entry := range doc.Rules {
		dept, err := vo.NewDepartment(entry.Department)
		if err != nil {
			return nil, fmt.Errorf("routing rule %d: %w", i+1, err)
		}
		if len(entry.Keywords) == 0 {
			return nil, fmt.Errorf("routing rule %d (%s): at least one keyword is required", i+1, dept)
		}
		rules = append(rules, complaint.Rule{Department: dept, Keywords: entry.Keywords})
	}

	return complaint.NewClassifier(rules, vo.Department(fallback)), nil
}
