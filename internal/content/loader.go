package content

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/quickquiz/internal/quiz"
)

// maxParallelLoads bounds how many quiz files are parsed at once.
const maxParallelLoads = 4

type quizDoc struct {
	Slug        string        `yaml:"slug"`
	Title       string        `yaml:"title"`
	Description string        `yaml:"description"`
	TimeLimit   *int          `yaml:"time_limit"`
	Questions   []questionDoc `yaml:"questions"`
}

type questionDoc struct {
	ID                 int      `yaml:"id"`
	Question           string   `yaml:"question"`
	Options            []string `yaml:"options"`
	CorrectAnswerIndex int      `yaml:"correct_answer_index"`
	Explanation        *string  `yaml:"explanation"`
}

func (d quizDoc) toQuiz(fallbackSlug string) *quiz.Quiz {
	q := &quiz.Quiz{
		Slug:        d.Slug,
		Title:       d.Title,
		Description: strings.TrimSpace(d.Description),
	}
	if q.Slug == "" {
		q.Slug = fallbackSlug
	}
	if d.TimeLimit != nil {
		q.TimeLimit = quiz.Some(*d.TimeLimit)
	}
	for _, qd := range d.Questions {
		question := quiz.Question{
			ID:           qd.ID,
			Prompt:       qd.Question,
			Options:      qd.Options,
			CorrectIndex: qd.CorrectAnswerIndex,
		}
		if qd.Explanation != nil && *qd.Explanation != "" {
			question.Explanation = quiz.Some(*qd.Explanation)
		}
		q.Questions = append(q.Questions, question)
	}
	return q
}

// Parse decodes and validates a YAML quiz document. name is used for error
// messages and, when the document has no slug, to derive one.
func Parse(name string, data []byte) (*quiz.Quiz, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%s: parse yaml: %w", name, err)
	}
	if err := validateSchema(raw); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	var doc quizDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: decode quiz: %w", name, err)
	}

	q := doc.toQuiz(slugFromName(name))
	if err := Validate(q); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return q, nil
}

// LoadFile reads and parses a single quiz file.
func LoadFile(path string) (*quiz.Quiz, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quiz file: %w", err)
	}
	return Parse(filepath.Base(path), data)
}

// LoadDir parses every *.yaml and *.yml file in dir, which must exist. Files that fail to
// load are reported together in the returned error; the quizzes that did
// load are still returned, ordered by file name.
func LoadDir(ctx context.Context, dir string) ([]*quiz.Quiz, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("quiz directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("quiz directory: %s is not a directory", dir)
	}

	var paths []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)

	loaded := make([]*quiz.Quiz, len(paths))
	var (
		mu   sync.Mutex
		errs error
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelLoads)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			q, err := LoadFile(path)
			if err != nil {
				mu.Lock()
				errs = multierror.Append(errs, err)
				mu.Unlock()
				return nil
			}
			loaded[i] = q
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*quiz.Quiz, 0, len(loaded))
	for _, q := range loaded {
		if q != nil {
			out = append(out, q)
		}
	}
	return out, errs
}

// Validate checks the invariants a playable quiz must hold and reports
// every violation at once.
func Validate(q *quiz.Quiz) error {
	if q == nil {
		return errors.New("nil quiz")
	}

	var errs error
	if strings.TrimSpace(q.Title) == "" {
		errs = multierror.Append(errs, errors.New("title is empty"))
	}
	if len(q.Questions) == 0 {
		errs = multierror.Append(errs, errors.New("quiz has no questions"))
	}
	if limit, ok := q.TimeLimit.Get(); ok && limit <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("time limit must be positive, got %d", limit))
	}

	seen := make(map[int]bool, len(q.Questions))
	for i, question := range q.Questions {
		if seen[question.ID] {
			errs = multierror.Append(errs, fmt.Errorf("question %d: duplicate id %d", i+1, question.ID))
		}
		seen[question.ID] = true

		if strings.TrimSpace(question.Prompt) == "" {
			errs = multierror.Append(errs, fmt.Errorf("question %d: prompt is empty", i+1))
		}
		if len(question.Options) < 2 {
			errs = multierror.Append(errs, fmt.Errorf("question %d: needs at least 2 options, got %d", i+1, len(question.Options)))
		}
	}
	return errs
}

// Lint returns non-fatal problems: a quiz with these still plays, but the
// affected questions can never be answered correctly.
func Lint(q *quiz.Quiz) []string {
	var warnings []string
	for i, question := range q.Questions {
		if question.CorrectAnswer() == "" {
			warnings = append(warnings, fmt.Sprintf(
				"question %d (id %d): correct_answer_index %d is outside the %d options",
				i+1, question.ID, question.CorrectIndex, len(question.Options)))
		}
	}
	return warnings
}

func slugFromName(name string) string {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.ToLower(strings.ReplaceAll(base, " ", "-"))
}
