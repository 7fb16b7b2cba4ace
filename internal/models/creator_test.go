package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskedName(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		lastName  string
		want      string
	}{
		{"ascii", "Alice", "Martin", "Alice M."},
		{"accented initial", "Eric", "Özdemir", "Eric Ö."},
		{"no last name", "Alice", "", "Alice"},
		{"no first name", "", "Martin", "M."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Creator{FirstName: tt.firstName, LastName: tt.lastName}
			assert.Equal(t, tt.want, c.MaskedName())
		})
	}
}

func TestFullName(t *testing.T) {
	c := Creator{FirstName: "Alice", LastName: "Martin"}
	assert.Equal(t, "Alice Martin", c.FullName())

	c.LastName = ""
	assert.Equal(t, "Alice", c.FullName())
}
