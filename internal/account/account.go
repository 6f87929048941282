// Package account is the board's stand-in for an external identity service.
// Simulated accepts any non-empty credentials and never stores them.
package account

import (
	"context"
	"strings"

	"soundboard/internal/services"
)

// Session identifies the signed-in user.
type Session struct {
	Email       string
	DisplayName string
}

// Service is the external account service contract.
type Service interface {
	Login(ctx context.Context, email, password string) (Session, error)
	SignUp(ctx context.Context, email, password string) (Session, error)
}

// Simulated accepts every well-formed request.
type Simulated struct{}

// Login returns a session for any non-empty email and password.
func (Simulated) Login(_ context.Context, email, password string) (Session, error) {
	return simulate(email, password)
}

// SignUp behaves like Login; nothing is persisted.
func (Simulated) SignUp(_ context.Context, email, password string) (Session, error) {
	return simulate(email, password)
}

func simulate(email, password string) (Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return Session{}, services.Validation("account", "please fill in all fields")
	}
	return Session{Email: email, DisplayName: DisplayName(email)}, nil
}

// DisplayName is the part of an email address before the first "@".
func DisplayName(email string) string {
	name, _, _ := strings.Cut(strings.TrimSpace(email), "@")
	return name
}
