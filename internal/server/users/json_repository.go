package users

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/azarovs/forumd/internal/common"
)

// JSONRepository loads the user-record file once at construction and serves
// lookups from memory. The file is a JSON object mapping username to
// {"password": "<phc hash>"}. The map is never mutated after load, so reads
// need no locking.
type JSONRepository struct {
	users map[string]*User
}

// NewJSONRepository reads and validates the users file at path. A missing
// file, malformed JSON, or a record without a password hash fail with an
// error wrapping common.ErrStorage; the server cannot start without its
// user records.
func NewJSONRepository(path string) (*JSONRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading users file %s: %v", common.ErrStorage, path, err)
	}

	records := make(map[string]*User)
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: parsing users file %s: %v", common.ErrStorage, path, err)
	}

	for name, u := range records {
		if u == nil || u.PasswordHash == "" {
			return nil, fmt.Errorf("%w: user %q has no password hash", common.ErrStorage, name)
		}
		u.Username = name
	}

	return &JSONRepository{users: records}, nil
}

func (r *JSONRepository) Lookup(ctx context.Context, username string) (*User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}
