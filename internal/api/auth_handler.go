package api

import (
	"log/slog"
	"net/http"

	"github.com/taskward/taskward-api/internal/api/shared"
	"github.com/taskward/taskward-api/internal/config"
	"github.com/taskward/taskward-api/internal/service/auth"
)

// AuthHandler handles credential issuance and logout.
type AuthHandler struct {
	jwtService auth.JWTService
	serverCfg  config.ServerConfig
	authCfg    config.AuthConfig
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	jwtService auth.JWTService,
	serverCfg config.ServerConfig,
	authCfg config.AuthConfig,
) *AuthHandler {
	return &AuthHandler{
		jwtService: jwtService,
		serverCfg:  serverCfg,
		authCfg:    authCfg,
	}
}

// IssueToken handles POST /api/jwt. It signs a credential for the supplied
// email identity, sets it as the http-only session cookie, and returns it
// in the body too.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req IssueTokenRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "A valid email is required")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), req.Email)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "email", req.Email)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	http.SetCookie(w, h.sessionCookie(token, int(h.authCfg.TokenLifetime.Seconds())))

	shared.RespondWithJSON(w, r, http.StatusOK, IssueTokenResponse{Token: token})
}

// Logout handles POST /api/logout. Verification is stateless, so revocation
// is client-side discard: the session cookie is expired and the client is
// expected to drop any stored copy.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))

	shared.RespondWithJSON(w, r, http.StatusOK, LogoutResponse{Success: true})
}

// sessionCookie builds the session cookie. In production the cookie is
// Secure with SameSite=None so cross-origin browser clients can send it;
// in development it stays Lax over plain HTTP.
func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if h.serverCfg.IsProduction() {
		sameSite = http.SameSiteNoneMode
	}

	return &http.Cookie{
		Name:     h.authCfg.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.serverCfg.IsProduction(),
		SameSite: sameSite,
	}
}
