// Copyright (c) 2026 Foodgram. All rights reserved.

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/IvanZabelin/foodgram/internal/platform/middleware"
)

type corsConfig struct {
	development bool
	extra       []string
}

func (c corsConfig) IsDevelopment() bool      { return c.development }
func (c corsConfig) AllowedOrigins() []string { return c.extra }

func corsResponse(cfg corsConfig, origin string) *httptest.ResponseRecorder {
	handler := middleware.CORS(cfg)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	request := httptest.NewRequest(http.MethodGet, "/api/recipes/", nil)
	if origin != "" {
		request.Header.Set("Origin", origin)
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

/*
TestCORS covers the origin allow check: open in development, the
foodgram.app suffix plus configured extra origins in production, and
nothing else.
*/
func TestCORS(t *testing.T) {
	production := corsConfig{extra: []string{"https://admin.example.com"}}

	t.Run("development_allows_any_origin", func(t *testing.T) {
		recorder := corsResponse(corsConfig{development: true}, "http://localhost:3000")
		assert.Equal(t, "http://localhost:3000", recorder.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("production_allows_app_suffix", func(t *testing.T) {
		recorder := corsResponse(production, "https://foodgram.app")
		assert.Equal(t, "https://foodgram.app", recorder.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("production_allows_configured_extra_origin", func(t *testing.T) {
		recorder := corsResponse(production, "https://admin.example.com")
		assert.Equal(t, "https://admin.example.com", recorder.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("production_rejects_unknown_origin", func(t *testing.T) {
		recorder := corsResponse(production, "https://evil.example.com")
		assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("no_origin_header_passes_through", func(t *testing.T) {
		recorder := corsResponse(production, "")
		assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
	})
}
