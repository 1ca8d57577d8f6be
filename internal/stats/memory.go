package stats

import (
	"context"
	"sync"
)

// MemoryStore keeps statistics in process memory. Values are lost on exit.
type MemoryStore struct {
	mu     sync.Mutex
	ints   map[string]int
	flags  map[string]bool
	writes []string
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		ints:  make(map[string]int),
		flags: make(map[string]bool),
	}
}

// Writes returns the names written so far, in order.
func (m *MemoryStore) Writes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.writes...)
}

func (m *MemoryStore) getInt(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ints[name]
}

func (m *MemoryStore) addInt(name string, n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ints[name] += n
	m.writes = append(m.writes, name)
}

func (m *MemoryStore) getFlag(name string, def bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.flags[name]
	if !ok {
		return def
	}
	return v
}

func (m *MemoryStore) setFlag(name string, v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flags[name] = v
	m.writes = append(m.writes, name)
}

func (m *MemoryStore) BestScore(context.Context) (int, error) {
	return m.getInt(KeyBestScore), nil
}

func (m *MemoryStore) SetBestScore(_ context.Context, score int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes = append(m.writes, KeyBestScore)
	if score <= m.ints[KeyBestScore] {
		return false, nil
	}
	m.ints[KeyBestScore] = score
	return true, nil
}

func (m *MemoryStore) QuizzesCompleted(context.Context) (int, error) {
	return m.getInt(KeyQuizzesCompleted), nil
}

func (m *MemoryStore) IncrementQuizzesCompleted(context.Context) error {
	m.addInt(KeyQuizzesCompleted, 1)
	return nil
}

func (m *MemoryStore) QuestionsAnswered(context.Context) (int, error) {
	return m.getInt(KeyQuestionsAnswered), nil
}

func (m *MemoryStore) AddQuestionsAnswered(_ context.Context, n int) error {
	m.addInt(KeyQuestionsAnswered, n)
	return nil
}

func (m *MemoryStore) CorrectAnswers(context.Context) (int, error) {
	return m.getInt(KeyCorrectAnswers), nil
}

func (m *MemoryStore) AddCorrectAnswers(_ context.Context, n int) error {
	m.addInt(KeyCorrectAnswers, n)
	return nil
}

func (m *MemoryStore) SoundEnabled(context.Context) (bool, error) {
	return m.getFlag(KeySoundEnabled, DefaultSoundEnabled), nil
}

func (m *MemoryStore) SetSoundEnabled(_ context.Context, enabled bool) error {
	m.setFlag(KeySoundEnabled, enabled)
	return nil
}

func (m *MemoryStore) VibrationEnabled(context.Context) (bool, error) {
	return m.getFlag(KeyVibrationEnabled, DefaultVibrationEnabled), nil
}

func (m *MemoryStore) SetVibrationEnabled(_ context.Context, enabled bool) error {
	m.setFlag(KeyVibrationEnabled, enabled)
	return nil
}

func (m *MemoryStore) Reset(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ints = make(map[string]int)
	m.flags = make(map[string]bool)
	m.writes = nil
	return nil
}
