package posts

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/azarovs/forumd/internal/common"
	"github.com/google/uuid"
)

// JSONRepository persists the post collection as a JSON array in a single
// file, rewritten wholesale on every append.
//
// The mutex serializes the whole read-modify-write cycle: two appends
// racing on the read would otherwise silently drop one of them
// (last-write-wins on the file). Writes go to a temp file first and are
// renamed into place, so a crash mid-write never truncates the collection.
type JSONRepository struct {
	path string
	mu   sync.Mutex
}

func NewJSONRepository(path string) *JSONRepository {
	return &JSONRepository{path: path}
}

func (r *JSONRepository) ListAll(ctx context.Context) ([]Post, error) {
	posts, err := r.read()
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []Post{}
	}
	return posts, nil
}

func (r *JSONRepository) Append(ctx context.Context, post Post) (*Post, error) {
	if !validDate(post.Date) {
		return nil, fmt.Errorf("%w: invalid date %q", common.ErrValidation, post.Date)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	posts, err := r.read()
	if err != nil {
		return nil, err
	}

	post.ID = uuid.NewString()
	if post.Replies == nil {
		post.Replies = []Post{}
	}

	posts = append(posts, post)

	if err := r.write(posts); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *JSONRepository) read() ([]Post, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading posts file %s: %v", common.ErrStorage, r.path, err)
	}

	var posts []Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("%w: parsing posts file %s: %v", common.ErrStorage, r.path, err)
	}

	return posts, nil
}

func (r *JSONRepository) write(posts []Post) error {
	data, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("%w: encoding posts: %v", common.ErrStorage, err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("%w: writing posts file: %v", common.ErrStorage, err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("%w: replacing posts file: %v", common.ErrStorage, err)
	}

	return nil
}
