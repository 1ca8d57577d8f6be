package stats

import (
	"context"

	"github.com/abhisek/quickquiz/internal/store"
)

// PrefsStore implements Store on a store.PrefsRepo.
type PrefsStore struct {
	repo store.PrefsRepo
}

var _ Store = (*PrefsStore)(nil)

// NewPrefsStore wraps repo.
func NewPrefsStore(repo store.PrefsRepo) *PrefsStore {
	return &PrefsStore{repo: repo}
}

func (p *PrefsStore) BestScore(ctx context.Context) (int, error) {
	return p.repo.GetInt(ctx, KeyBestScore, 0)
}

func (p *PrefsStore) SetBestScore(ctx context.Context, score int) (bool, error) {
	return p.repo.MaxInt(ctx, KeyBestScore, score)
}

func (p *PrefsStore) QuizzesCompleted(ctx context.Context) (int, error) {
	return p.repo.GetInt(ctx, KeyQuizzesCompleted, 0)
}

func (p *PrefsStore) IncrementQuizzesCompleted(ctx context.Context) error {
	_, err := p.repo.AddInt(ctx, KeyQuizzesCompleted, 1)
	return err
}

func (p *PrefsStore) QuestionsAnswered(ctx context.Context) (int, error) {
	return p.repo.GetInt(ctx, KeyQuestionsAnswered, 0)
}

func (p *PrefsStore) AddQuestionsAnswered(ctx context.Context, n int) error {
	_, err := p.repo.AddInt(ctx, KeyQuestionsAnswered, n)
	return err
}

func (p *PrefsStore) CorrectAnswers(ctx context.Context) (int, error) {
	return p.repo.GetInt(ctx, KeyCorrectAnswers, 0)
}

func (p *PrefsStore) AddCorrectAnswers(ctx context.Context, n int) error {
	_, err := p.repo.AddInt(ctx, KeyCorrectAnswers, n)
	return err
}

func (p *PrefsStore) SoundEnabled(ctx context.Context) (bool, error) {
	return p.repo.GetBool(ctx, KeySoundEnabled, DefaultSoundEnabled)
}

func (p *PrefsStore) SetSoundEnabled(ctx context.Context, enabled bool) error {
	return p.repo.SetBool(ctx, KeySoundEnabled, enabled)
}

func (p *PrefsStore) VibrationEnabled(ctx context.Context) (bool, error) {
	return p.repo.GetBool(ctx, KeyVibrationEnabled, DefaultVibrationEnabled)
}

func (p *PrefsStore) SetVibrationEnabled(ctx context.Context, enabled bool) error {
	return p.repo.SetBool(ctx, KeyVibrationEnabled, enabled)
}

func (p *PrefsStore) Reset(ctx context.Context) error {
	return p.repo.Clear(ctx)
}
