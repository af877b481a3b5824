package posts

import (
	"context"
	"fmt"

	"github.com/azarovs/forumd/internal/common"
)

// SessionChecker validates that a username/token pair is a live session.
type SessionChecker interface {
	Validate(username, token string) bool
}

// Service authorizes callers against the session registry and delegates
// post reads and writes to the repository. The session check always runs
// before storage is touched.
type Service struct {
	repo     Repository
	sessions SessionChecker
}

func NewService(repo Repository, sessions SessionChecker) *Service {
	return &Service{repo: repo, sessions: sessions}
}

// Authorized reports whether the username/token pair is a live session.
// The HTTP layer uses it to reject unauthenticated requests up front,
// before reading a request body.
func (s *Service) Authorized(username, token string) bool {
	return s.sessions.Validate(username, token)
}

// List returns the full post collection for an authenticated caller.
func (s *Service) List(ctx context.Context, username, token string) ([]Post, error) {
	if !s.sessions.Validate(username, token) {
		return nil, common.ErrorUnauthorized
	}

	return s.repo.ListAll(ctx)
}

// Create appends a new post authored by username. A request with Parent
// set is a reply, which the forum does not support yet; it is rejected
// with common.ErrNotImplemented rather than silently dropped.
func (s *Service) Create(ctx context.Context, username, token string, np NewPost) (*Post, error) {
	if !s.sessions.Validate(username, token) {
		return nil, common.ErrorUnauthorized
	}

	if np.Parent != "" {
		return nil, fmt.Errorf("%w: replying to a post", common.ErrNotImplemented)
	}

	post := Post{
		Author:  username,
		Date:    np.Date,
		Title:   np.Title,
		Msg:     np.Msg,
		Replies: []Post{},
	}

	return s.repo.Append(ctx, post)
}
