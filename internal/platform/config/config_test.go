// Copyright (c) 2026 Foodgram. All rights reserved.

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/IvanZabelin/foodgram/internal/platform/config"
)

/*
TestAllowedOrigins checks EXTRA_ORIGINS parsing: comma splitting, whitespace
trimming, and empty entries dropped.
*/
func TestAllowedOrigins(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "https://a.example.com", []string{"https://a.example.com"}},
		{"multiple_with_spaces", " https://a.example.com , https://b.example.com ", []string{"https://a.example.com", "https://b.example.com"}},
		{"trailing_comma", "https://a.example.com,", []string{"https://a.example.com"}},
		{"only_commas", ",,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{ExtraOrigins: tt.value}
			assert.Equal(t, tt.want, cfg.AllowedOrigins())
		})
	}
}
