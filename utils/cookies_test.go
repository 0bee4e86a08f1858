package utils_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tickoff/utils"

	"github.com/google/uuid"
)

func TestCookieExists(t *testing.T) {
	tests := []struct {
		name       string
		setupReq   func() *http.Request
		cookieName string
		want       bool
	}{
		{
			name: "Cookie exists with value",
			setupReq: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				req.AddCookie(&http.Cookie{
					Name:  utils.FlashCookie,
					Value: "abc123",
				})
				return req
			},
			cookieName: utils.FlashCookie,
			want:       true,
		},
		{
			name: "Cookie exists but empty value",
			setupReq: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				req.AddCookie(&http.Cookie{
					Name:  utils.FlashCookie,
					Value: "",
				})
				return req
			},
			cookieName: utils.FlashCookie,
			want:       false,
		},
		{
			name: "Cookie doesn't exist",
			setupReq: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/", nil)
			},
			cookieName: utils.FlashCookie,
			want:       false,
		},
		{
			name: "Different cookie exists",
			setupReq: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				req.AddCookie(&http.Cookie{
					Name:  "other_cookie",
					Value: "xyz789",
				})
				return req
			},
			cookieName: utils.FlashCookie,
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.setupReq()
			if got := utils.CookieExists(req, tt.cookieName); got != tt.want {
				t.Errorf("CookieExists() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFlashToken(t *testing.T) {
	t.Run("Reuses existing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: utils.FlashCookie, Value: "existing-token"})
		w := httptest.NewRecorder()

		if got := utils.FlashToken(w, req); got != "existing-token" {
			t.Errorf("FlashToken() = %q, want %q", got, "existing-token")
		}
		if cookies := w.Result().Cookies(); len(cookies) != 0 {
			t.Errorf("FlashToken() set %d cookies, want 0", len(cookies))
		}
	})

	t.Run("Issues new token when missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		token := utils.FlashToken(w, req)
		if _, err := uuid.Parse(token); err != nil {
			t.Errorf("FlashToken() = %q, not a valid UUID: %v", token, err)
		}

		cookies := w.Result().Cookies()
		if len(cookies) != 1 {
			t.Fatalf("FlashToken() set %d cookies, want 1", len(cookies))
		}
		if cookies[0].Name != utils.FlashCookie || cookies[0].Value != token {
			t.Errorf("set cookie %s=%s, want %s=%s", cookies[0].Name, cookies[0].Value, utils.FlashCookie, token)
		}
	})
}
