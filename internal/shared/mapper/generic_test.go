package mapper

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapSlice(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  []string
	}{
		{"nil input returns empty slice", nil, []string{}},
		{"empty slice returns empty slice", []int{}, []string{}},
		{"maps in order", []int{3, 1, 2}, []string{"3", "1", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapSlice(tt.input, strconv.Itoa)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapSliceSkipNil(t *testing.T) {
	one, two, three := 1, 2, 3
	input := []*int{&one, nil, &two, &three}

	got := MapSliceSkipNil(input, func(i *int) *string {
		if *i == 2 {
			return nil
		}
		s := strconv.Itoa(*i)
		return &s
	})

	assert.Len(t, got, 2)
	assert.Equal(t, "1", *got[0])
	assert.Equal(t, "3", *got[1])
	assert.NotNil(t, MapSliceSkipNil[int, string](nil, nil))
}
