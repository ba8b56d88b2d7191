package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"phonegate/internal/domain"
	"phonegate/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sign-in errors
var (
	ErrPhoneNotReady    = errors.New("phone number is not valid yet")
	ErrSubmitInProgress = errors.New("sign-in already in progress")
	ErrInvalidToken     = errors.New("profile has no valid login uuid")
)

// SignInForm submits the phone form: it fetches a mock profile, caches it
// and hands the profile's login uuid to the session store as the token.
type SignInForm struct {
	phone   *PhoneInput
	fetcher repository.ProfileFetcher
	storage Storage
	session *SessionStore
	logger  *zap.Logger

	mu      sync.Mutex
	loading bool
	lastErr error
}

// NewSignInForm creates a form bound to one visitor's input, storage and session
func NewSignInForm(
	phone *PhoneInput,
	fetcher repository.ProfileFetcher,
	storage Storage,
	session *SessionStore,
	logger *zap.Logger,
) *SignInForm {
	return &SignInForm{
		phone:   phone,
		fetcher: fetcher,
		storage: storage,
		session: session,
		logger:  logger,
	}
}

// Loading reports whether a submit is pending
func (f *SignInForm) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

// LastError returns the error of the last submit, nil after a success
func (f *SignInForm) LastError() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// Submit signs the visitor in. Loading is cleared whether it succeeds or fails.
func (f *SignInForm) Submit(ctx context.Context) error {
	if !f.phone.IsValid() {
		return ErrPhoneNotReady
	}

	f.mu.Lock()
	if f.loading {
		f.mu.Unlock()
		return ErrSubmitInProgress
	}
	f.loading = true
	f.lastErr = nil
	f.mu.Unlock()

	err := f.signIn(ctx)

	f.mu.Lock()
	f.loading = false
	f.lastErr = err
	f.mu.Unlock()

	if err != nil {
		f.logger.Warn("Sign-in failed", zap.Error(err))
		return err
	}

	f.logger.Info("Sign-in succeeded",
		zap.String("phone", domain.NormalizePhone(f.phone.Phone())),
	)
	return nil
}

func (f *SignInForm) signIn(ctx context.Context) error {
	body, err := f.fetcher.FetchProfile(ctx)
	if err != nil {
		return err
	}

	profile, err := domain.ParseProfile(body)
	if err != nil {
		return err
	}

	token := profile.Primary().Login.UUID
	if _, err := uuid.Parse(token); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidToken, token)
	}

	if err := f.storage.SetItem(domain.KeyUser, string(body)); err != nil {
		return err
	}

	return f.session.Set(token)
}
