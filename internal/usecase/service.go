package usecase

import (
	"context"
	"errors"
	"sort"

	"github.com/MONUkushawaha987/tictocBackend/internal/domain"
)

var (
	ErrMissingFields      = errors.New("username and password are required")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type Repository interface {
	CreateUser(ctx context.Context, username, password string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// Register creates a new account with a zero score. Both fields must be
// present; duplicate usernames surface as domain.ErrUserExists.
func (s *Service) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, ErrMissingFields
	}
	return s.repo.CreateUser(ctx, username, password)
}

// Login checks the credentials against the stored record. Unknown username
// and wrong password both return ErrInvalidCredentials so a caller cannot
// probe which usernames exist.
func (s *Service) Login(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, ErrMissingFields
	}
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if user.Password != password {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Leaderboard returns every user projected to {username, score}, ordered by
// score descending with ties broken by ascending id. It sorts a copy of the
// record set; a read never reorders the store.
func (s *Service) Leaderboard(ctx context.Context) ([]domain.ScoreEntry, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].Score != users[j].Score {
			return users[i].Score > users[j].Score
		}
		return users[i].ID < users[j].ID
	})
	entries := make([]domain.ScoreEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, domain.ScoreEntry{Username: u.Username, Score: u.Score})
	}
	return entries, nil
}

// UserCount reports how many records are loaded, for the health endpoint.
func (s *Service) UserCount(ctx context.Context) (int, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return 0, err
	}
	return len(users), nil
}
