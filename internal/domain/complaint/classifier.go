package complaint

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	vo "civicpulse/internal/domain/complaint/valueobjects"
)

// Rule routes a complaint to Department when its description contains any
// of Keywords.
type Rule struct {
	Department vo.Department
	Keywords   []string
}

// DefaultRules is the built-in routing table. Order matters: the first rule
// with a matching keyword wins, so "streetlight" lands in Road & Transport
// through "street".
func DefaultRules() []Rule {
	return []Rule{
		{
			Department: vo.DepartmentRoadTransport,
			Keywords:   []string{"road", "street", "pothole", "sidewalk", "bridge", "traffic", "bus", "transport", "parking", "signal", "sign"},
		},
		{
			Department: vo.DepartmentSanitation,
			Keywords:   []string{"garbage", "trash", "waste", "drain", "drainage", "sewer", "sewage", "litter", "bin", "cleanup", "flood"},
		},
		{
			Department: vo.DepartmentElectricity,
			Keywords:   []string{"electricity", "power", "outage", "streetlight", "street light", "lighting", "lamp", "wire", "transformer"},
		},
		{
			Department: vo.DepartmentEnvironment,
			Keywords:   []string{"environment", "tree", "park", "pollution", "noise", "smoke", "air quality", "water", "grass", "pest"},
		},
	}
}

// Classifier assigns departments by case-insensitive keyword containment.
// It is immutable after construction and safe for concurrent use.
type Classifier struct {
	rules    []Rule
	fallback vo.Department
}

// NewClassifier builds a classifier over rules, in order. Empty keywords and
// rules without a department are dropped. An empty fallback means Others.
func NewClassifier(rules []Rule, fallback vo.Department) *Classifier {
	if fallback.IsEmpty() {
		fallback = vo.DepartmentOthers
	}

	normalized := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if r.Department.IsEmpty() {
			continue
		}
		keywords := make([]string, 0, len(r.Keywords))
		for _, k := range r.Keywords {
			if k = normalize(strings.TrimSpace(k)); k != "" {
				keywords = append(keywords, k)
			}
		}
		normalized = append(normalized, Rule{Department: r.Department, Keywords: keywords})
	}

	return &Classifier{rules: normalized, fallback: fallback}
}

// NewDefaultClassifier uses DefaultRules with the Others fallback.
func NewDefaultClassifier() *Classifier {
	return NewClassifier(DefaultRules(), vo.DepartmentOthers)
}

// Classify returns the department for description. It never fails and
// never returns an empty department.
func (c *Classifier) Classify(description string) vo.Department {
	text := normalize(description)
	for _, r := range c.rules {
		for _, k := range r.Keywords {
			if strings.Contains(text, k) {
				return r.Department
			}
		}
	}
	return c.fallback
}

// Rules returns a copy of the routing table in match order.
func (c *Classifier) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	for i, r := range c.rules {
		out[i] = Rule{Department: r.Department, Keywords: append([]string(nil), r.Keywords...)}
	}
	return out
}

func (c *Classifier) Fallback() vo.Department {
	return c.fallback
}

var defaultClassifier = NewDefaultClassifier()

// Classify routes description with the built-in table.
func Classify(description string) vo.Department {
	return defaultClassifier.Classify(description)
}

// normalize lower-cases s. A Caser holds state, so one is built per call.
func normalize(s string) string {
	return cases.Lower(language.Und).String(s)
}
