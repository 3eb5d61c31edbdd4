// Package server implements the alarm's HTTP interface: alarm registration, Nest login & health.
package server

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/clambin/go-common/http/middleware"
	"github.com/clambin/nest-alarm/internal/store"
	"golang.org/x/oauth2"
)

const (
	stateCookie = "nest_oauth_state"
	tokenCookie = "nest_token"
)

// AlarmScheduler schedules (or cancels) a check ahead of an alarm.
type AlarmScheduler interface {
	Schedule(alarm time.Time) time.Duration
	Cancel()
}

// OAuthConfig is the part of oauth2.Config used by the Nest login flow.
type OAuthConfig interface {
	AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string
	Exchange(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error)
}

// TokenStore stores the access token received after logging in.
type TokenStore interface {
	Set(key, value string) error
}

// Refresher is called after a successful login, so the new token is used immediately.
type Refresher interface {
	Refresh()
}

// Server serves the alarm's HTTP endpoints. Handlers that aren't configured (nil) aren't served.
type Server struct {
	Alarm     AlarmScheduler
	OAuth     OAuthConfig
	Tokens    TokenStore
	Refresher Refresher
	Health    http.Handler
	StaticDir string
	Logger    *slog.Logger
}

func (s *Server) Handler() http.Handler {
	m := http.NewServeMux()
	if s.Alarm != nil {
		m.HandleFunc("GET /alarm/{timestamp}", s.handleAlarm)
	}
	if s.OAuth != nil {
		m.HandleFunc("GET /auth/nest", s.handleLogin)
		m.HandleFunc("GET /auth/nest/callback", s.handleCallback)
	}
	if s.Health != nil {
		m.Handle("GET /health", s.Health)
	}
	if s.StaticDir != "" {
		m.Handle("GET /", http.FileServer(http.Dir(s.StaticDir)))
	}
	return middleware.RequestLogger(s.Logger, slog.LevelInfo, middleware.DefaultRequestLogFormatter)(m)
}

// handleAlarm receives the time of the next alarm, as milliseconds since epoch. Any previously scheduled check is
// canceled, even if the new timestamp isn't valid.
func (s *Server) handleAlarm(w http.ResponseWriter, r *http.Request) {
	s.Alarm.Cancel()

	timestamp, err := strconv.ParseInt(r.PathValue("timestamp"), 10, 64)
	if err != nil || timestamp <= 0 {
		s.Logger.Warn("Null timestamp", "timestamp", r.PathValue("timestamp"))
	} else {
		alarm := time.UnixMilli(timestamp)
		delay := s.Alarm.Schedule(alarm)
		s.Logger.Info("setting timer", "alarm", alarm, "delay", delay)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("success\n"))
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	state, err := newState()
	if err != nil {
		s.Logger.Error("failed to create oauth state", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/auth/nest",
		MaxAge:   int((10 * time.Minute).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, s.OAuth.AuthCodeURL(state), http.StatusFound)
}

func (s *Server) handleCallback(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(stateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != r.URL.Query().Get("state") {
		http.Error(w, "invalid oauth state", http.StatusBadRequest)
		return
	}
	http.SetCookie(w, &http.Cookie{Name: stateCookie, Path: "/auth/nest", MaxAge: -1})

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "missing code", http.StatusBadRequest)
		return
	}

	token, err := s.OAuth.Exchange(r.Context(), code)
	if err != nil {
		s.Logger.Error("failed to get nest access token", "err", err)
		http.Error(w, "login failed", http.StatusBadGateway)
		return
	}
	if err = s.Tokens.Set(store.KeyNestToken, token.AccessToken); err != nil {
		s.Logger.Error("failed to store nest access token", "err", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}
	s.Logger.Info("logged in to nest")
	if s.Refresher != nil {
		s.Refresher.Refresh()
	}

	http.SetCookie(w, &http.Cookie{Name: tokenCookie, Value: token.AccessToken, Path: "/"})
	http.Redirect(w, r, "/", http.StatusFound)
}

func newState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
