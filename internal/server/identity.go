package server

import (
	"net/http"

	"tailscale.com/client/local"
)

// SetTailscale wires the tsnet local client used to resolve caller identity.
// Without it /api/v1/me is unavailable (plain HTTP dev mode).
func (s *Server) SetTailscale(lc *local.Client) {
	s.ts = lc
}

// handleWhoAmI resolves the caller's tailnet identity and provisions a user
// row on first contact.
func (s *Server) handleWhoAmI(w http.ResponseWriter, r *http.Request) {
	if s.ts == nil {
		http.Error(w, "identity requires tailscale", http.StatusServiceUnavailable)
		return
	}

	who, err := s.ts.WhoIs(r.Context(), r.RemoteAddr)
	if err != nil {
		s.log.Error("whois failed", "remote", r.RemoteAddr, "error", err)
		http.Error(w, "identity lookup failed", http.StatusInternalServerError)
		return
	}

	login := who.UserProfile.LoginName
	display := who.UserProfile.DisplayName
	userID, err := s.db.GetOrCreateUser(r.Context(), login, display)
	if err != nil {
		s.log.Error("user provisioning failed", "login", login, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user_id":      userID,
		"login":        login,
		"display_name": display,
	})
}
