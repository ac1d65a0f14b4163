package model

import "time"

// Account is a persisted storefront user.
type Account struct {
	ID        int64     `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Name      string    `json:"name,omitempty" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Identity is the owner of a cart or wishlist scope: either a guest key or an account.
type Identity struct {
	GuestKey string   `json:"guestKey,omitempty"`
	Account  *Account `json:"account,omitempty"`
}

// GuestIdentity returns the identity of an anonymous session.
func GuestIdentity(key string) Identity {
	return Identity{GuestKey: key}
}

// AccountIdentity returns the identity of an authenticated session.
func AccountIdentity(sessionKey string, account *Account) Identity {
	return Identity{GuestKey: sessionKey, Account: account}
}

// IsGuest reports whether the identity has no authenticated account.
func (i Identity) IsGuest() bool {
	return i.Account == nil
}

// AccountID returns the account id, or zero for a guest.
func (i Identity) AccountID() int64 {
	if i.Account == nil {
		return 0
	}
	return i.Account.ID
}

// SessionState is the authentication state of a session.
type SessionState string

const (
	SessionAnonymous      SessionState = "anonymous"
	SessionAuthenticating SessionState = "authenticating"
	SessionAuthenticated  SessionState = "authenticated"
)

// Session is the identity provider's view of one client session.
type Session struct {
	Key     string       `json:"key"`
	State   SessionState `json:"state"`
	Account *Account     `json:"account,omitempty"`
}

// Identity returns the identity the session currently acts as.
func (s Session) Identity() Identity {
	if s.State == SessionAuthenticated && s.Account != nil {
		return AccountIdentity(s.Key, s.Account)
	}
	return GuestIdentity(s.Key)
}

// LoginRequest represents the request payload for logging in.
type LoginRequest struct {
	Email string `json:"email"`
}

// RegisterRequest represents the request payload for registration.
type RegisterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse is returned after a successful login or registration.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Account   *Account  `json:"account"`
}
