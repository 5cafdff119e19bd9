package auth

import "time"

// DefaultTokenTTL is the session lifetime used when none is configured.
const DefaultTokenTTL = 7 * 24 * time.Hour

// Identity is the authenticated principal carried inside a session token.
type Identity struct {
	UserID int64
	Email  string
}

type Strategy interface {
	IssueToken(identity Identity) (string, error)
	ParseToken(token string) (Identity, error)
}

type Options struct {
	TTL time.Duration
}
