package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kirinyoku/holidaze/internal/domain"
	"github.com/kirinyoku/holidaze/internal/repository"
	postgresrepo "github.com/kirinyoku/holidaze/internal/repository/postgres"
)

type Service struct {
	store    *postgresrepo.Store
	validate *validator.Validate
}

func New(store *postgresrepo.Store) *Service {
	return &Service{
		store:    store,
		validate: validator.New(),
	}
}

// Register creates a profile or refreshes the email and bio of an existing one.
//
// Returns:
//   - error: profiles.ErrInvalidName or profiles.ErrInvalidEmail for bad input.
func (s *Service) Register(ctx context.Context, p domain.Profile) (*domain.Profile, error) {
	const op = "service.profiles.Register"

	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)

	if err := s.validate.Var(p.Name, "required,max=20"); err != nil || !validName(p.Name) {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidName)
	}

	if err := s.validate.Var(p.Email, "required,email"); err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	if err := s.store.Profiles().Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.profile(ctx, op, p.Name)
}

// Get returns a profile with the venues it manages and every booking it holds.
func (s *Service) Get(ctx context.Context, name string) (*domain.ProfileDetails, error) {
	const op = "service.profiles.Get"

	p, err := s.profile(ctx, op, name)
	if err != nil {
		return nil, err
	}

	venues, err := s.store.Venues().ListByOwner(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	bookings, err := s.store.Bookings().ListByCustomer(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &domain.ProfileDetails{
		Profile:  *p,
		Venues:   venues,
		Bookings: bookings,
	}, nil
}

// UpdateAvatar replaces the profile picture. An empty URL clears it.
func (s *Service) UpdateAvatar(ctx context.Context, name, url string) (*domain.Profile, error) {
	const op = "service.profiles.UpdateAvatar"

	url = strings.TrimSpace(url)

	avatar := domain.Media{}
	if url != "" {
		if err := s.validate.Var(url, "url"); err != nil {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidAvatar)
		}

		avatar = domain.Media{URL: url, Alt: name + "'s avatar"}
	}

	if err := s.store.Profiles().UpdateAvatar(ctx, name, avatar); err != nil {
		return nil, fmt.Errorf("%s: %w", op, notFound(err))
	}

	return s.profile(ctx, op, name)
}

func (s *Service) SetVenueManager(ctx context.Context, name string, manager bool) (*domain.Profile, error) {
	const op = "service.profiles.SetVenueManager"

	if err := s.store.Profiles().SetVenueManager(ctx, name, manager); err != nil {
		return nil, fmt.Errorf("%s: %w", op, notFound(err))
	}

	return s.profile(ctx, op, name)
}

func (s *Service) profile(ctx context.Context, op, name string) (*domain.Profile, error) {
	p, err := s.store.Profiles().Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, notFound(err))
	}

	return p, nil
}

func notFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrProfileNotFound
	}

	return err
}

func validName(name string) bool {
	for _, r := range name {
		ok := r == '_' ||
			(r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9')
		if !ok {
			return false
		}
	}

	return name != ""
}
