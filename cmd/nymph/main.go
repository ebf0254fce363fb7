package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	adapthttp "github.com/Shiki0x/nymph/internal/adapter/http"
	"github.com/Shiki0x/nymph/internal/adapter/memory"
	"github.com/Shiki0x/nymph/internal/adapter/postgres"
	"github.com/Shiki0x/nymph/internal/app"
	"github.com/Shiki0x/nymph/internal/domain"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

func main() {
	addr := env("ADDR", ":8080")

	var (
		events   domain.HabitEventRepository
		profiles domain.ProfileRepository
		links    domain.LinkRepository
		cards    domain.CardRepository
		users    domain.UserRepository
		sessions domain.SessionRepository
	)

	if os.Getenv("MEMORY_STORE") == "1" {
		store := memory.New()
		events, profiles, links, cards, users = store, store, store, store, store
		sessions = store.NewSessionRepo()
		log.Print("using in-memory store; data is not persisted")
	} else {
		connStr := os.Getenv("DATABASE_URL")
		if connStr == "" {
			log.Fatal("DATABASE_URL is required (or set MEMORY_STORE=1)")
		}

		db, err := postgres.Open(connStr)
		if err != nil {
			log.Fatalf("db open: %v", err)
		}
		defer func() { _ = db.Close() }()

		events, profiles, links, cards, users = db, db, db, db, db
		sessions = postgres.NewSessionRepo(db)
	}

	habitSvc := app.NewHabitService(events)
	streakSvc := app.NewStreakService(events)
	profileSvc := app.NewProfileService(profiles, links, cards, events)
	authSvc := app.NewAuthService(users, sessions)

	h := adapthttp.New(habitSvc, streakSvc, profileSvc, authSvc, oidcFromEnv()).Handler()
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func oidcFromEnv() adapthttp.OIDCConfig {
	issuer := os.Getenv("OIDC_ISSUER")
	if issuer == "" {
		return adapthttp.OIDCConfig{}
	}

	provider, err := oidc.NewProvider(context.Background(), issuer)
	if err != nil {
		log.Fatalf("oidc provider: %v", err)
	}

	return adapthttp.OIDCConfig{
		Enabled:  true,
		Provider: provider,
		OAuth2Config: oauth2.Config{
			ClientID:     os.Getenv("OIDC_CLIENT_ID"),
			ClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
			RedirectURL:  env("OIDC_REDIRECT_URL", "http://localhost:8080/api/auth/sso/callback"),
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
