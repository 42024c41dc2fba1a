package payout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MrJamesThe3rd/clubshop/internal/club"
)

var (
	ErrNotConnected = errors.New("club has no payment processor account")
	ErrMissingEmail = errors.New("email is required to connect an account")
)

// Account is a club's payment processor account.
type Account struct {
	Club      string
	AccountID string
}

func (a Account) Connected() bool {
	return a.AccountID != ""
}

//go:generate mockgen -source=payout.go -destination=source_mock.go -package=payout
type Source interface {
	// AccountID returns the club's processor account id, empty when none.
	AccountID(ctx context.Context, clubName string) (string, error)
	OnboardingLink(ctx context.Context, clubName, email string) (string, error)
	LoginLink(ctx context.Context, clubName string) (string, error)
}

// Service manages how a club gets paid out by the payment processor.
type Service struct {
	source Source
}

func NewService(source Source) *Service {
	return &Service{source: source}
}

func (s *Service) Status(ctx context.Context, clubName string) (Account, error) {
	if err := requireClub(clubName); err != nil {
		return Account{}, err
	}

	id, err := s.source.AccountID(ctx, clubName)
	if err != nil {
		return Account{}, fmt.Errorf("fetching account status: %w", err)
	}

	return Account{Club: clubName, AccountID: id}, nil
}

// Connect starts processor onboarding for the club and returns the
// onboarding page URL.
func (s *Service) Connect(ctx context.Context, clubName, email string) (string, error) {
	if err := requireClub(clubName); err != nil {
		return "", err
	}

	if strings.TrimSpace(email) == "" {
		return "", ErrMissingEmail
	}

	url, err := s.source.OnboardingLink(ctx, clubName, email)
	if err != nil {
		return "", fmt.Errorf("creating onboarding link: %w", err)
	}

	return url, nil
}

// LoginLink returns a one-off link to the club's processor dashboard.
func (s *Service) LoginLink(ctx context.Context, clubName string) (string, error) {
	account, err := s.Status(ctx, clubName)
	if err != nil {
		return "", err
	}

	if !account.Connected() {
		return "", ErrNotConnected
	}

	url, err := s.source.LoginLink(ctx, clubName)
	if err != nil {
		return "", fmt.Errorf("creating login link: %w", err)
	}

	return url, nil
}

func requireClub(clubName string) error {
	if strings.TrimSpace(clubName) == "" {
		return fmt.Errorf("%w: missing club", club.ErrIncompleteScope)
	}

	return nil
}
