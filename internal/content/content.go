// Package content provides the quizzes the app can play: the embedded
// built-in set plus any quiz files found in a user directory.
package content

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/abhisek/quickquiz/internal/quiz"
)

//go:embed quizzes/*.yaml
var builtinFS embed.FS

// Slugs of the built-in quizzes.
const (
	SlugGeneral    = "general"
	SlugTechnology = "technology"
)

var ErrQuizNotFound = errors.New("quiz not found")

// builtinOrder fixes the menu order of the embedded quizzes.
var builtinOrder = []string{"general.yaml", "technology.yaml"}

// Builtin returns the embedded quizzes.
func Builtin() ([]*quiz.Quiz, error) {
	return loadFS(builtinFS, "quizzes", builtinOrder)
}

func loadFS(fsys fs.FS, dir string, names []string) ([]*quiz.Quiz, error) {
	out := make([]*quiz.Quiz, 0, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		q, err := Parse(name, data)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, nil
}

// Catalog is an ordered set of quizzes addressable by slug.
type Catalog struct {
	quizzes []*quiz.Quiz
	bySlug  map[string]*quiz.Quiz
}

// NewCatalog builds a catalog. Slugs must be unique.
func NewCatalog(quizzes ...*quiz.Quiz) (*Catalog, error) {
	c := &Catalog{bySlug: make(map[string]*quiz.Quiz, len(quizzes))}
	for _, q := range quizzes {
		if err := c.add(q); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) add(q *quiz.Quiz) error {
	if _, dup := c.bySlug[q.Slug]; dup {
		return fmt.Errorf("duplicate quiz slug %q", q.Slug)
	}
	c.bySlug[q.Slug] = q
	c.quizzes = append(c.quizzes, q)
	return nil
}

// All returns the quizzes in catalog order.
func (c *Catalog) All() []*quiz.Quiz {
	return c.quizzes
}

// Get returns the quiz with the given slug.
func (c *Catalog) Get(slug string) (*quiz.Quiz, error) {
	q, ok := c.bySlug[slug]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrQuizNotFound, slug)
	}
	return q, nil
}

// Load returns the built-in quizzes followed by those in userDir (if
// non-empty). User quizzes that fail to load, or whose slug clashes with
// one already loaded, are reported in the returned error; the catalog is
// still usable.
func Load(ctx context.Context, userDir string) (*Catalog, error) {
	builtin, err := Builtin()
	if err != nil {
		return nil, fmt.Errorf("load built-in quizzes: %w", err)
	}
	c, err := NewCatalog(builtin...)
	if err != nil {
		return nil, err
	}
	if userDir == "" {
		return c, nil
	}

	user, loadErr := LoadDir(ctx, userDir)
	if loadErr != nil && user == nil {
		return c, fmt.Errorf("load quizzes from %s: %w", userDir, loadErr)
	}
	var errs []error
	if loadErr != nil {
		errs = append(errs, loadErr)
	}
	for _, q := range user {
		if err := c.add(q); err != nil {
			errs = append(errs, err)
		}
	}
	return c, errors.Join(errs...)
}
