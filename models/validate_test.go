package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		model     any
		wantField string
	}{
		{"valid note", &Note{ID: 1, CategoryID: 2, Title: "t", Content: "c"}, ""},
		{"note without category", &Note{ID: 1, Title: "t", Content: "c"}, "CategoryID"},
		{"note without content", &Note{ID: 1, CategoryID: 2, Title: "t"}, "Content"},
		{"category without name", &Category{ID: 1}, "Name"},
		{"category name too long", &Category{ID: 1, Name: strings.Repeat("x", 101)}, "Name"},
		{"user without password", &User{ID: 1, Username: "admin"}, "Password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.model)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			assert.Equal(t, tt.wantField, verrs[0].Field())
		})
	}
}
