package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolePrefix(t *testing.T) {
	tests := []struct {
		identity string
		want     string
	}{
		{"chair_1", "chair"},
		{"technical_expert", "technical"},
		{"chairperson", "chairperson"},
		{"devils_advocate_2", "devils"},
		{"", ""},
		{"_leading", ""},
	}

	for _, tt := range tests {
		t.Run(tt.identity, func(t *testing.T) {
			assert.Equal(t, tt.want, RolePrefix(tt.identity))
		})
	}
}

func TestExperienceLevel(t *testing.T) {
	tests := []struct {
		name      string
		identity  string
		overrides map[string]int
		want      int
	}{
		{"built-in chairperson", "chairperson", nil, 12},
		{"built-in secretary", "secretary_1", nil, 8},
		{"built-in innovator", "innovator", nil, 7},
		{"built-in via prefix", "technical_expert", nil, 10},
		{"unrecognized defaults", "chair_1", nil, DefaultExperienceLevel},
		{"empty identity defaults", "", nil, DefaultExperienceLevel},
		{"override wins", "chairperson", map[string]int{"chairperson": 3}, 3},
		{"override adds prefix", "chair_1", map[string]int{"chair": 15}, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExperienceLevel(tt.identity, tt.overrides))
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		identity string
		want     string
	}{
		{"chair_1", "Chair 1"},
		{"sec_1", "Sec 1"},
		{"technical_expert", "Technical Expert"},
		{"chairperson", "Chairperson"},
		{"devils_advocate", "Devils Advocate"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.identity, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayName(tt.identity))
		})
	}
}
