package usecase

import (
	"context"
	"testing"

	"github.com/MONUkushawaha987/tictocBackend/internal/domain"

	"github.com/stretchr/testify/assert"
)

type mockRepo struct {
	users  []domain.User
	nextID int
}

func newMockRepo() *mockRepo {
	return &mockRepo{users: []domain.User{}}
}

func (m *mockRepo) CreateUser(ctx context.Context, username, password string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return nil, domain.ErrUserExists
		}
	}
	m.nextID++
	newUser := domain.User{
		ID:       m.nextID,
		Username: username,
		Password: password,
		Score:    0,
	}
	m.users = append(m.users, newUser)
	return &newUser, nil
}

func (m *mockRepo) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (m *mockRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	out := make([]domain.User, len(m.users))
	copy(out, m.users)
	return out, nil
}

func (m *mockRepo) setScore(username string, score int) {
	for i := range m.users {
		if m.users[i].Username == username {
			m.users[i].Score = score
		}
	}
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()
	mock := newMockRepo()
	svc := NewService(mock)

	u1, err := svc.Register(ctx, "Ziyo", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, 1, u1.ID)
	assert.Equal(t, "Ziyo", u1.Username)
	assert.Equal(t, 0, u1.Score)

	u2, err := svc.Register(ctx, "Ali", "secret456")
	assert.NoError(t, err)
	assert.Greater(t, u2.ID, u1.ID, "ids must be strictly increasing")

	_, err = svc.Register(ctx, "Ziyo", "other")
	assert.ErrorIs(t, err, domain.ErrUserExists)
	assert.Len(t, mock.users, 2, "duplicate must not change the record count")

	_, err = svc.Register(ctx, "", "secret123")
	assert.ErrorIs(t, err, ErrMissingFields)
	_, err = svc.Register(ctx, "NoPass", "")
	assert.ErrorIs(t, err, ErrMissingFields)
	assert.Len(t, mock.users, 2, "rejected input must not change the record count")
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	mock := newMockRepo()
	svc := NewService(mock)

	reg, err := svc.Register(ctx, "Ziyo", "secret123")
	assert.NoError(t, err)

	u, err := svc.Login(ctx, "Ziyo", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, reg.ID, u.ID)
	assert.Equal(t, "Ziyo", u.Username)
	assert.Equal(t, 0, u.Score)

	_, err = svc.Login(ctx, "Ziyo", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "Nobody", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials, "unknown user and wrong password must be indistinguishable")

	_, err = svc.Login(ctx, "Ziyo", "")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestService_Leaderboard(t *testing.T) {
	ctx := context.Background()
	mock := newMockRepo()
	svc := NewService(mock)

	_, _ = svc.Register(ctx, "a", "pw")
	_, _ = svc.Register(ctx, "b", "pw")
	_, _ = svc.Register(ctx, "c", "pw")
	mock.setScore("a", 10)
	mock.setScore("b", 50)
	mock.setScore("c", 30)

	entries, err := svc.Leaderboard(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []domain.ScoreEntry{
		{Username: "b", Score: 50},
		{Username: "c", Score: 30},
		{Username: "a", Score: 10},
	}, entries)

	again, err := svc.Leaderboard(ctx)
	assert.NoError(t, err)
	assert.Equal(t, entries, again, "repeated reads must return the same ordering")
}

func TestService_LeaderboardTieBreak(t *testing.T) {
	ctx := context.Background()
	mock := newMockRepo()
	svc := NewService(mock)

	_, _ = svc.Register(ctx, "first", "pw")
	_, _ = svc.Register(ctx, "second", "pw")
	mock.setScore("first", 20)
	mock.setScore("second", 20)

	entries, err := svc.Leaderboard(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "first", entries[0].Username, "equal scores order by ascending id")
	assert.Equal(t, "second", entries[1].Username)
}

func TestService_LeaderboardEmpty(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMockRepo())

	entries, err := svc.Leaderboard(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Len(t, entries, 0)
}

func TestService_LeaderboardDoesNotReorderStore(t *testing.T) {
	ctx := context.Background()
	mock := newMockRepo()
	svc := NewService(mock)

	_, _ = svc.Register(ctx, "low", "pw")
	_, _ = svc.Register(ctx, "high", "pw")
	mock.setScore("high", 99)

	_, err := svc.Leaderboard(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "low", mock.users[0].Username, "reads must not mutate the record set")
	assert.Equal(t, "high", mock.users[1].Username)
}
