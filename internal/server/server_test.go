package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/HeroVerse_Go/internal/domain"
)

type stubPool struct{ err error }

func (p stubPool) Ping(context.Context) error { return p.err }
func (p stubPool) Close() {}

type stubEconomy struct{}

func (stubEconomy) GetProfile(context.Context) (*domain.Profile, error) {
	return &domain.Profile{UserID: "u1", Username: "ada", Balance: 10}, nil
}

func (stubEconomy) SendSuperCash(context.Context, string, int64) domain.CommandResult {
	return domain.Succeeded(domain.CommandSendSuperCash, "sent")
}

func (stubEconomy) ApplyReferralCode(context.Context, string) domain.CommandResult {
	return domain.Succeeded(domain.CommandApplyReferral, "applied")
}

func TestNewRouter(t *testing.T) {
	router := NewRouter(
		Options{APIKey: "k", Version: "1.2.3"},
		Services{DBPool: stubPool{}, Economy: stubEconomy{}},
	)

	tests := []struct {
		name       string
		path       string
		key        string
		wantStatus int
		wantBody   string
	}{
		{"healthz is public", "/healthz", "", http.StatusOK, `"status":"ok"`},
		{"readyz is public", "/readyz", "", http.StatusOK, `"status":"ok"`},
		{"version is public", "/version", "", http.StatusOK, `"version":"1.2.3"`},
		{"metrics is public", "/metrics", "", http.StatusOK, ""},
		{"api requires key", "/api/v1/profile", "", http.StatusUnauthorized, ""},
		{"api with key", "/api/v1/profile", "k", http.StatusOK, `"username":"ada"`},
		{"unknown route", "/api/v1/nope", "k", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.key != "" {
				req.Header.Set(HeaderAPIKey, tt.key)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestNewRouter_NoAPIKeyLeavesAPIOpen(t *testing.T) {
	router := NewRouter(Options{}, Services{DBPool: stubPool{}, Economy: stubEconomy{}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
}

func TestNewRouter_ReadyzReportsBackendDown(t *testing.T) {
	router := NewRouter(Options{}, Services{DBPool: stubPool{err: assert.AnError}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
