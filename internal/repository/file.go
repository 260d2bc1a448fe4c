package repository

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"sync"

	"github.com/pkg/errors"

	"github.com/MONUkushawaha987/tictocBackend/internal/domain"
)

// FileRepo keeps the full record set in memory and mirrors it to a single
// JSON file. The file is read once at construction and rewritten wholesale
// after every insertion. The mutex serializes check-append-persist so two
// concurrent registrations for the same username cannot both succeed.
type FileRepo struct {
	path string

	mu     sync.RWMutex
	users  []domain.User
	nextID int
}

// NewFileRepo loads the users file at path. A missing file starts an empty
// store; an unparsable file is a fatal construction error.
func NewFileRepo(path string) (*FileRepo, error) {
	r := &FileRepo{path: path, nextID: 1}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *FileRepo) load() error {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("users file %s not found, starting with an empty store", r.path)
			return nil
		}
		return errors.Wrap(err, "repo: read users file")
	}
	var users []domain.User
	if err := json.Unmarshal(data, &users); err != nil {
		return errors.Wrapf(err, "repo: parse users file %s", r.path)
	}
	r.users = users
	for _, u := range users {
		if u.ID >= r.nextID {
			r.nextID = u.ID + 1
		}
	}
	log.Printf("successfully loaded %d users from %s", len(users), r.path)
	return nil
}

// persist rewrites the whole file via a temp file and rename so a crash
// mid-write cannot leave a truncated users file. Caller must hold the write
// lock.
func (r *FileRepo) persist() error {
	data, err := json.MarshalIndent(r.users, "", "  ")
	if err != nil {
		return errors.Wrap(err, "repo: marshal users")
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrap(err, "repo: write users file")
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return errors.Wrap(err, "repo: replace users file")
	}
	return nil
}

// CreateUser allocates the next id, appends the record with a zero score and
// persists the store. Returns domain.ErrUserExists on a duplicate username;
// a persist failure fails the insertion and leaves the store unchanged.
func (r *FileRepo) CreateUser(ctx context.Context, username, password string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username {
			return nil, domain.ErrUserExists
		}
	}
	user := domain.User{
		ID:       r.nextID,
		Username: username,
		Password: password,
		Score:    0,
	}
	r.users = append(r.users, user)
	if err := r.persist(); err != nil {
		r.users = r.users[:len(r.users)-1]
		return nil, err
	}
	r.nextID++
	return &user, nil
}

// GetUserByUsername returns the record with an exact username match, or nil
// if no such user exists.
func (r *FileRepo) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

// ListUsers returns a copy of the record set so callers can sort or filter
// without touching the canonical state.
func (r *FileRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out, nil
}
