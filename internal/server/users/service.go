package users

import (
	"context"
	"errors"

	"github.com/azarovs/forumd/internal/common"
	"github.com/azarovs/forumd/internal/cryptox"
)

// TokenGranter issues session tokens for authenticated users.
type TokenGranter interface {
	Grant(username string) (string, error)
}

// Service verifies credentials against the user repository and issues
// session tokens on success.
type Service struct {
	repo     Repository
	sessions TokenGranter
}

func NewService(repo Repository, sessions TokenGranter) *Service {
	return &Service{repo: repo, sessions: sessions}
}

// Authenticate checks username/password and, on success, grants and returns
// a session token. Unknown users and wrong passwords both map to
// common.ErrorUnauthorized so the response does not leak which usernames
// exist.
func (s *Service) Authenticate(ctx context.Context, username, password string) (string, error) {

	user, err := s.repo.Lookup(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	ok, err := cryptox.VerifyPassword([]byte(password), user.PasswordHash)
	if err != nil {
		// stored hash is unreadable; not the caller's fault
		return "", common.ErrorInternal
	}
	if !ok {
		return "", common.ErrorUnauthorized
	}

	token, err := s.sessions.Grant(username)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}
