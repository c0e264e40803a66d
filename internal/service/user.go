package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/wendelDmesquita/minhas-financas-api/internal/metrics"
	"github.com/wendelDmesquita/minhas-financas-api/internal/model"
	"github.com/wendelDmesquita/minhas-financas-api/internal/repository"
)

// UserStore is the persistence contract the user service consumes.
// FindUserByEmail and FindUserByID return (nil, nil) when no user matches.
type UserStore interface {
	SaveUser(ctx context.Context, user *model.User) (*model.User, error)
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsUserByEmail(ctx context.Context, email string) (bool, error)
	FindUserByID(ctx context.Context, id int64) (*model.User, error)
}

// UserService handles registration and authentication.
type UserService struct {
	store   UserStore
	metrics metrics.Recorder
}

// NewUserService creates a new UserService.
func NewUserService(store UserStore, recorder metrics.Recorder) *UserService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &UserService{
		store:   store,
		metrics: recorder,
	}
}

// Authenticate looks the user up by exact email match and compares the
// stored password verbatim. Plaintext comparison is preserved for
// compatibility with the legacy system; see README for the security note.
// The two failure modes differ only by message, never by error kind.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user == nil {
		s.metrics.IncAuthAttempt("failure")
		return nil, ErrUserNotFound
	}

	if user.Password != password {
		s.metrics.IncAuthAttempt("failure")
		return nil, ErrWrongPassword
	}

	s.metrics.IncAuthAttempt("success")

	return user, nil
}

// Register persists a new user after an advisory duplicate-email check.
// The check and the insert are separate store operations; the race between
// concurrent registrations is closed by the store's unique constraint, not
// here.
func (s *UserService) Register(ctx context.Context, user *model.User) (*model.User, error) {
	if err := s.validateEmail(ctx, user.Email); err != nil {
		return nil, err
	}

	saved, err := s.store.SaveUser(ctx, user)
	if err != nil {
		// A concurrent registration can slip past the advisory check; the
		// store's unique constraint catches it and the user sees the same
		// duplicate-email message.
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.metrics.IncUserRegistered()

	return saved, nil
}

// FindByID returns the user with the given identity, or nil if absent.
func (s *UserService) FindByID(ctx context.Context, id int64) (*model.User, error) {
	return s.store.FindUserByID(ctx, id)
}

// validateEmail fails with ErrEmailTaken when a user with this email
// already exists.
func (s *UserService) validateEmail(ctx context.Context, email string) error {
	exists, err := s.store.ExistsUserByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check email existence: %w", err)
	}

	if exists {
		return ErrEmailTaken
	}

	return nil
}
