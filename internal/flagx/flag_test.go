package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value kept",
			args:    []string{"-d", "clinic.db", "-x", "1"},
			allowed: []string{"-d"},
			want:    []string{"-d", "clinic.db"},
		},
		{
			name:    "equals form kept",
			args:    []string{"--config=conf.json", "-o", "out.txt"},
			allowed: []string{"--config"},
			want:    []string{"--config=conf.json"},
		},
		{
			name:    "unknown flags dropped",
			args:    []string{"-z", "val", "-q"},
			allowed: []string{"-d"},
			want:    []string{},
		},
		{
			name:    "flag followed by another flag keeps no value",
			args:    []string{"-d", "-o", "out.txt"},
			allowed: []string{"-d"},
			want:    []string{"-d"},
		},
		{
			name:    "empty input",
			args:    nil,
			allowed: []string{"-d"},
			want:    []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterArgs(tc.args, tc.allowed)
			assert.Equal(t, tc.want, got)
		})
	}
}
