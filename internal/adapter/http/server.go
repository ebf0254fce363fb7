package adapthttp

import (
	"net/http"

	"github.com/Shiki0x/nymph/internal/app"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// OIDCConfig holds the optional SSO configuration.
type OIDCConfig struct {
	Enabled      bool
	Provider     *oidc.Provider
	OAuth2Config oauth2.Config
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	habits      *app.HabitService
	streaks     *app.StreakService
	profiles    *app.ProfileService
	authSvc     *app.AuthService
	oidcConfig  OIDCConfig
	disableAuth bool
}

// New creates a Server wired to the given application services.
func New(hs *app.HabitService, ss *app.StreakService, ps *app.ProfileService, as *app.AuthService, oidcConfig OIDCConfig) *Server {
	return &Server{habits: hs, streaks: ss, profiles: ps, authSvc: as, oidcConfig: oidcConfig}
}

// WithoutAuth disables session validation. For tests only.
func (s *Server) WithoutAuth() *Server {
	s.disableAuth = true
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/auth/register", s.handleRegister)
	api.HandleFunc("/auth/login", s.handleLogin)
	api.HandleFunc("/auth/logout", s.handleLogout)
	api.HandleFunc("/auth/config", s.handleConfig)
	api.HandleFunc("/auth/sso/login", s.handleSSOLogin)
	api.HandleFunc("/auth/sso/callback", s.handleSSOCallback)

	protected := http.NewServeMux()
	protected.HandleFunc("/habits/log", s.handleHabitLog)
	protected.HandleFunc("/habits/recent", s.handleHabitRecent)
	protected.HandleFunc("/habits/undo-last", s.handleHabitUndoLast)

	protected.HandleFunc("/streaks", s.handleStreaks)

	protected.HandleFunc("/profile", s.handleProfile)
	protected.HandleFunc("/links", s.handleLinks)
	protected.HandleFunc("/links/delete", s.handleLinkDelete)
	protected.HandleFunc("/cards", s.handleCards)
	protected.HandleFunc("/cards/delete", s.handleCardDelete)

	api.Handle("/", s.authMiddleware(protected))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	root.HandleFunc("/p/", s.handlePublicProfile)

	return s.loggingMiddleware(withNoCache(root))
}
