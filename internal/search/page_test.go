package search

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPage(t *testing.T) {
	ordered := []int{0, 1, 2, 3, 4}

	tests := []struct {
		name          string
		shift, amount int
		want          []int
	}{
		{"first page", 0, 2, []int{0, 1}},
		{"middle page", 2, 2, []int{2, 3}},
		{"tail is clamped", 3, 5, []int{3, 4}},
		{"shift past end", 10, 5, []int{}},
		{"shift at end", 5, 1, []int{}},
		{"zero amount", 0, 0, []int{}},
		{"negative shift starts at zero", -3, 2, []int{0, 1}},
		{"huge amount", 1, math.MaxInt, []int{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Page(ordered, tt.shift, tt.amount))
		})
	}
}

func TestPageEmptyInput(t *testing.T) {
	assert.Equal(t, []string{}, Page([]string(nil), 0, 10))
}
