package utils

import (
	"net/http"

	"github.com/google/uuid"
)

// FlashCookie names the cookie carrying a browser's flash token.
const FlashCookie = "flash_token"

func CookieExists(r *http.Request, name string) bool {
	st, err := r.Cookie(name)
	return err == nil && st.Value != ""
}

// FlashToken returns the browser's flash token, issuing a new cookie when
// none is present.
func FlashToken(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(FlashCookie); err == nil && c.Value != "" {
		return c.Value
	}

	token := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return token
}
