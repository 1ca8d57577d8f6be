// Package stats persists cross-session quiz statistics and player settings.
package stats

import (
	"context"
	"fmt"

	"github.com/abhisek/quickquiz/internal/quiz"
)

// Persisted names and their defaults.
const (
	KeyBestScore         = "best_score"
	KeyQuizzesCompleted  = "total_quizzes_completed"
	KeyQuestionsAnswered = "total_questions_answered"
	KeyCorrectAnswers    = "total_correct_answers"
	KeySoundEnabled      = "sound_enabled"
	KeyVibrationEnabled  = "vibration_enabled"

	DefaultSoundEnabled     = true
	DefaultVibrationEnabled = true
)

// Store is the statistics and settings handle passed to whatever needs it.
type Store interface {
	BestScore(ctx context.Context) (int, error)

	// SetBestScore keeps the running maximum. It reports whether score
	// replaced the previous best.
	SetBestScore(ctx context.Context, score int) (bool, error)

	QuizzesCompleted(ctx context.Context) (int, error)
	IncrementQuizzesCompleted(ctx context.Context) error

	QuestionsAnswered(ctx context.Context) (int, error)
	AddQuestionsAnswered(ctx context.Context, n int) error

	CorrectAnswers(ctx context.Context) (int, error)
	AddCorrectAnswers(ctx context.Context, n int) error

	SoundEnabled(ctx context.Context) (bool, error)
	SetSoundEnabled(ctx context.Context, enabled bool) error

	VibrationEnabled(ctx context.Context) (bool, error)
	SetVibrationEnabled(ctx context.Context, enabled bool) error

	// Reset clears all statistics and settings back to their defaults.
	Reset(ctx context.Context) error
}

// Outcome describes what Record changed.
type Outcome struct {
	NewBest bool
}

// Record applies a finished quiz to the running statistics. Writes happen
// in a fixed order: quizzes, questions, correct answers, best score.
func Record(ctx context.Context, s Store, r *quiz.Result) (Outcome, error) {
	if r == nil {
		return Outcome{}, fmt.Errorf("record: nil result")
	}
	if err := s.IncrementQuizzesCompleted(ctx); err != nil {
		return Outcome{}, fmt.Errorf("increment quizzes completed: %w", err)
	}
	if err := s.AddQuestionsAnswered(ctx, r.TotalQuestions); err != nil {
		return Outcome{}, fmt.Errorf("add questions answered: %w", err)
	}
	if err := s.AddCorrectAnswers(ctx, r.CorrectAnswers); err != nil {
		return Outcome{}, fmt.Errorf("add correct answers: %w", err)
	}
	newBest, err := s.SetBestScore(ctx, r.Percentage)
	if err != nil {
		return Outcome{}, fmt.Errorf("update best score: %w", err)
	}
	return Outcome{NewBest: newBest}, nil
}

// Summary is every persisted value read at once.
type Summary struct {
	BestScore         int
	QuizzesCompleted  int
	QuestionsAnswered int
	CorrectAnswers    int
	SoundEnabled      bool
	VibrationEnabled  bool
}

// Accuracy returns correct answers as a percentage of questions answered,
// or 0 when nothing has been answered.
func (s Summary) Accuracy() float64 {
	if s.QuestionsAnswered <= 0 {
		return 0
	}
	return float64(s.CorrectAnswers) / float64(s.QuestionsAnswered) * 100
}

// Load reads a Summary from s.
func Load(ctx context.Context, s Store) (Summary, error) {
	var sum Summary
	var err error

	if sum.BestScore, err = s.BestScore(ctx); err != nil {
		return Summary{}, fmt.Errorf("best score: %w", err)
	}
	if sum.QuizzesCompleted, err = s.QuizzesCompleted(ctx); err != nil {
		return Summary{}, fmt.Errorf("quizzes completed: %w", err)
	}
	if sum.QuestionsAnswered, err = s.QuestionsAnswered(ctx); err != nil {
		return Summary{}, fmt.Errorf("questions answered: %w", err)
	}
	if sum.CorrectAnswers, err = s.CorrectAnswers(ctx); err != nil {
		return Summary{}, fmt.Errorf("correct answers: %w", err)
	}
	if sum.SoundEnabled, err = s.SoundEnabled(ctx); err != nil {
		return Summary{}, fmt.Errorf("sound enabled: %w", err)
	}
	if sum.VibrationEnabled, err = s.VibrationEnabled(ctx); err != nil {
		return Summary{}, fmt.Errorf("vibration enabled: %w", err)
	}
	return sum, nil
}
