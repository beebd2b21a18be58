package complaint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	vo "civicpulse/internal/domain/complaint/valueobjects"
)

func TestClassify_DefaultTable(t *testing.T) {
	tests := []struct {
		description string
		want        vo.Department
	}{
		{"pothole on Main St", vo.DepartmentRoadTransport},
		{"the sky is blue", vo.DepartmentOthers},
		{"", vo.DepartmentOthers},
		{"Garbage not collected for a week", vo.DepartmentSanitation},
		{"POWER OUTAGE since morning", vo.DepartmentElectricity},
		{"Loud noise from construction at night", vo.DepartmentEnvironment},
		{"Please repair the fence", vo.DepartmentOthers},
		// first match wins: "streetlight" contains "street"
		{"streetlight broken", vo.DepartmentRoadTransport},
		// road rule is checked before sanitation
		{"garbage dumped on the road", vo.DepartmentRoadTransport},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.description))
		})
	}
}

func TestClassifier_CustomRules(t *testing.T) {
	c := NewClassifier([]Rule{
		{Department: "Water Board", Keywords: []string{" Leak ", "", "pipe"}},
		{Department: vo.DepartmentRoadTransport, Keywords: []string{"road"}},
	}, "General Services")

	assert.Equal(t, vo.Department("Water Board"), c.Classify("leaking pipe on the road"))
	assert.Equal(t, vo.DepartmentRoadTransport, c.Classify("road closed"))
	assert.Equal(t, vo.Department("General Services"), c.Classify("stray dogs"))
	assert.Equal(t, []string{"leak", "pipe"}, c.Rules()[0].Keywords)
}

func TestClassifier_SkipsRulesWithoutDepartment(t *testing.T) {
	c := NewClassifier([]Rule{
		{Department: "", Keywords: []string{"leak"}},
		{Department: "  ", Keywords: []string{"pipe"}},
		{Department: "Water Board", Keywords: []string{"pipe"}},
	}, "")

	assert.Len(t, c.Rules(), 1)
	assert.Equal(t, vo.DepartmentOthers, c.Classify("small leak"))
	assert.Equal(t, vo.Department("Water Board"), c.Classify("burst pipe"))
}

func TestClassifier_EmptyFallbackIsOthers(t *testing.T) {
	c := NewClassifier(nil, "")
	assert.Equal(t, vo.DepartmentOthers, c.Classify("anything"))
	assert.Equal(t, vo.DepartmentOthers, c.Fallback())
}
