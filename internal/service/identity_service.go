package service

import (
	"context"
	"net/mail"
	"slices"
	"strings"
	"sync"

	"simuweb/internal/guest"
	"simuweb/internal/model"
	"simuweb/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// identityService implements IdentityService. Sessions are keyed by a
// client-held UUID; the account of an authenticated session is cached in the
// guest store so it survives a restart.
type identityService struct {
	userRepo repository.UserRepository
	store    guest.Store
	logger   zerolog.Logger

	mu        sync.Mutex
	sessions  map[string]*model.Session
	observers []LoginObserver
}

// NewIdentityService creates a new identity service. userRepo may be nil when
// no database is configured; Login and Register then report model.ErrNotConfigured.
func NewIdentityService(userRepo repository.UserRepository, store guest.Store, logger zerolog.Logger) IdentityService {
	return &identityService{
		userRepo: userRepo,
		store:    store,
		logger:   logger.With().Str("service", "identity").Logger(),
		sessions: make(map[string]*model.Session),
	}
}

func (s *identityService) Subscribe(observer LoginObserver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, observer)
}

func (s *identityService) Current(ctx context.Context, sessionKey string) (model.Session, error) {
	if err := ValidateSessionKey(sessionKey); err != nil {
		return model.Session{}, err
	}

	s.mu.Lock()
	if sess, ok := s.sessions[sessionKey]; ok {
		current := *sess
		s.mu.Unlock()
		return current, nil
	}
	s.mu.Unlock()

	var account model.Account
	found, err := s.store.Get(ctx, guest.UserKey(sessionKey), &account)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to read cached session")
		return model.Session{}, model.Persistence("read session", err)
	}
	if !found {
		return model.Session{Key: sessionKey, State: model.SessionAnonymous}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[sessionKey]; ok {
		return *sess, nil
	}
	sess := &model.Session{Key: sessionKey, State: model.SessionAuthenticated, Account: &account}
	s.sessions[sessionKey] = sess
	return *sess, nil
}

// Login authenticates the session as the account registered for email.
// An unknown email is reported as model.ErrAccountNotFound; no account is created.
func (s *identityService) Login(ctx context.Context, sessionKey, email string) (*model.Account, error) {
	if err := ValidateSessionKey(sessionKey); err != nil {
		return nil, err
	}
	email, err := normaliseEmail(email)
	if err != nil {
		return nil, err
	}
	if s.userRepo == nil {
		return nil, model.ErrNotConfigured
	}

	current, err := s.Current(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	if current.State == model.SessionAuthenticated {
		if current.Account.Email == email {
			// Sweep up guest state written with the bare session key since the
			// last login. The session stays authenticated whatever the outcome.
			if err := s.notify(ctx, sessionKey, current.Account); err != nil {
				return nil, err
			}
			return current.Account, nil
		}
		if err := s.Logout(ctx, sessionKey); err != nil {
			return nil, err
		}
	}

	if !s.begin(sessionKey) {
		return nil, model.ErrLoginInProgress
	}

	account, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		s.reset(sessionKey)
		s.logger.Error().Err(err).Msg("failed to look up account")
		return nil, model.Persistence("look up account", err)
	}
	if account == nil {
		s.reset(sessionKey)
		s.logger.Warn().Str("email", email).Msg("login for unknown email")
		return nil, model.ErrAccountNotFound
	}

	if err := s.complete(ctx, sessionKey, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Register creates an account for email and authenticates the session as it.
func (s *identityService) Register(ctx context.Context, sessionKey, name, email string) (*model.Account, error) {
	if err := ValidateSessionKey(sessionKey); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrNameRequired
	}
	email, err := normaliseEmail(email)
	if err != nil {
		return nil, err
	}
	if s.userRepo == nil {
		return nil, model.ErrNotConfigured
	}

	current, err := s.Current(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	if current.State == model.SessionAuthenticated {
		if err := s.Logout(ctx, sessionKey); err != nil {
			return nil, err
		}
	}
	if !s.begin(sessionKey) {
		return nil, model.ErrLoginInProgress
	}

	account := &model.Account{Email: email, Name: name}
	if err := s.userRepo.Create(ctx, account); err != nil {
		s.reset(sessionKey)
		if model.Code(err) == model.ErrCodeConflict {
			s.logger.Warn().Str("email", email).Msg("registration for existing email")
			return nil, err
		}
		s.logger.Error().Err(err).Msg("failed to create account")
		return nil, model.Persistence("create account", err)
	}

	s.logger.Info().Int64("user_id", account.ID).Msg("account registered")

	if err := s.complete(ctx, sessionKey, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *identityService) Logout(ctx context.Context, sessionKey string) error {
	if err := ValidateSessionKey(sessionKey); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.sessions, sessionKey)
	s.mu.Unlock()

	if err := s.store.Delete(ctx, guest.UserKey(sessionKey)); err != nil {
		s.logger.Error().Err(err).Msg("failed to delete cached session")
		return model.Persistence("delete session", err)
	}

	s.logger.Debug().Msg("session logged out")
	return nil
}

// begin moves the session to Authenticating. It reports false when another
// login for the same session is already in flight.
func (s *identityService) begin(sessionKey string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[sessionKey]; ok && sess.State == model.SessionAuthenticating {
		return false
	}
	s.sessions[sessionKey] = &model.Session{Key: sessionKey, State: model.SessionAuthenticating}
	return true
}

// reset returns the session to Anonymous.
func (s *identityService) reset(sessionKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionKey)
}

// complete notifies the observers and marks the session Authenticated. If an
// observer fails the session goes back to Anonymous; the merges behind the
// observers are idempotent, so the login can simply be retried.
func (s *identityService) complete(ctx context.Context, sessionKey string, account *model.Account) error {
	if err := s.notify(ctx, sessionKey, account); err != nil {
		s.reset(sessionKey)
		return err
	}

	if err := s.store.Put(ctx, guest.UserKey(sessionKey), account); err != nil {
		s.reset(sessionKey)
		s.logger.Error().Err(err).Msg("failed to cache session")
		return model.Persistence("cache session", err)
	}

	s.mu.Lock()
	s.sessions[sessionKey] = &model.Session{Key: sessionKey, State: model.SessionAuthenticated, Account: account}
	s.mu.Unlock()

	s.logger.Info().Int64("user_id", account.ID).Msg("session authenticated")
	return nil
}

func (s *identityService) notify(ctx context.Context, sessionKey string, account *model.Account) error {
	s.mu.Lock()
	observers := slices.Clone(s.observers)
	s.mu.Unlock()

	for _, observer := range observers {
		if err := observer.OnLogin(ctx, sessionKey, account); err != nil {
			s.logger.Error().Err(err).Int64("user_id", account.ID).Msg("login observer failed")
			return err
		}
	}
	return nil
}

// NewSessionKey returns a fresh guest session key.
func NewSessionKey() string {
	return uuid.NewString()
}

// ValidateSessionKey checks that key is a UUID.
func ValidateSessionKey(key string) error {
	if key == "" {
		return model.ErrSessionRequired
	}
	if _, err := uuid.Parse(key); err != nil {
		return model.ErrInvalidSessionKey
	}
	return nil
}

func normaliseEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", model.ErrInvalidEmail
	}
	return email, nil
}
