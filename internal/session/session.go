// Package session resolves the current user's session token from a request.
// How the token got there (sign-in, refresh) belongs to the external auth provider.
package session

import (
	"net/http"
	"strings"
)

// Session is the authenticated user's opaque credential.
type Session struct {
	Token string
}

// Provider looks up the session for a request. ok is false when the visitor is unauthenticated.
type Provider interface {
	Lookup(r *http.Request) (Session, bool)
}

// CookieProvider reads the token from a named cookie set by the auth provider.
type CookieProvider struct {
	Name string
}

// NewCookieProvider returns a provider reading the given cookie.
func NewCookieProvider(name string) CookieProvider {
	return CookieProvider{Name: name}
}

// Lookup returns the cookie's value as the session token.
func (p CookieProvider) Lookup(r *http.Request) (Session, bool) {
	if r == nil || p.Name == "" {
		return Session{}, false
	}
	c, err := r.Cookie(p.Name)
	if err != nil {
		return Session{}, false
	}
	token := strings.TrimSpace(c.Value)
	if token == "" {
		return Session{}, false
	}
	return Session{Token: token}, true
}

// StaticProvider treats every request as signed in with a fixed token. Development only.
type StaticProvider struct {
	Token string
}

// Lookup returns the static token when one is configured.
func (p StaticProvider) Lookup(*http.Request) (Session, bool) {
	if p.Token == "" {
		return Session{}, false
	}
	return Session{Token: p.Token}, true
}

// New picks the static provider when a token is configured and the cookie provider otherwise.
func New(cookieName, staticToken string) Provider {
	if staticToken != "" {
		return StaticProvider{Token: staticToken}
	}
	return NewCookieProvider(cookieName)
}
