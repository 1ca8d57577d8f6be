package stats

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// setIfGreater stores ARGV[1] at KEYS[1] when it beats the current value.
// Returns 1 if the value changed.
var setIfGreater = redis.NewScript(`
local cur = tonumber(redis.call('GET', KEYS[1]) or '0')
local v = tonumber(ARGV[1])
if v > cur then
  redis.call('SET', KEYS[1], ARGV[1])
  return 1
end
return 0
`)

// RedisStore implements Store on Redis keys under a prefix.
type RedisStore struct {
	client *redis.Client
	prefix string
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore returns a RedisStore writing keys as prefix+name.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (r *RedisStore) key(name string) string {
	return r.prefix + name
}

func (r *RedisStore) getInt(ctx context.Context, name string) (int, error) {
	v, err := r.client.Get(ctx, r.key(name)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get %s: %w", name, err)
	}
	return v, nil
}

func (r *RedisStore) incr(ctx context.Context, name string, n int) error {
	if err := r.client.IncrBy(ctx, r.key(name), int64(n)).Err(); err != nil {
		return fmt.Errorf("incr %s: %w", name, err)
	}
	return nil
}

func (r *RedisStore) getFlag(ctx context.Context, name string, def bool) (bool, error) {
	v, err := r.client.Get(ctx, r.key(name)).Result()
	if errors.Is(err, redis.Nil) {
		return def, nil
	}
	if err != nil {
		return false, fmt.Errorf("get %s: %w", name, err)
	}
	return v == "1", nil
}

func (r *RedisStore) setFlag(ctx context.Context, name string, v bool) error {
	val := "0"
	if v {
		val = "1"
	}
	if err := r.client.Set(ctx, r.key(name), val, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", name, err)
	}
	return nil
}

func (r *RedisStore) BestScore(ctx context.Context) (int, error) {
	return r.getInt(ctx, KeyBestScore)
}

func (r *RedisStore) SetBestScore(ctx context.Context, score int) (bool, error) {
	changed, err := setIfGreater.Run(ctx, r.client, []string{r.key(KeyBestScore)}, score).Int()
	if err != nil {
		return false, fmt.Errorf("set %s: %w", KeyBestScore, err)
	}
	return changed == 1, nil
}

func (r *RedisStore) QuizzesCompleted(ctx context.Context) (int, error) {
	return r.getInt(ctx, KeyQuizzesCompleted)
}

func (r *RedisStore) IncrementQuizzesCompleted(ctx context.Context) error {
	return r.incr(ctx, KeyQuizzesCompleted, 1)
}

func (r *RedisStore) QuestionsAnswered(ctx context.Context) (int, error) {
	return r.getInt(ctx, KeyQuestionsAnswered)
}

func (r *RedisStore) AddQuestionsAnswered(ctx context.Context, n int) error {
	return r.incr(ctx, KeyQuestionsAnswered, n)
}

func (r *RedisStore) CorrectAnswers(ctx context.Context) (int, error) {
	return r.getInt(ctx, KeyCorrectAnswers)
}

func (r *RedisStore) AddCorrectAnswers(ctx context.Context, n int) error {
	return r.incr(ctx, KeyCorrectAnswers, n)
}

func (r *RedisStore) SoundEnabled(ctx context.Context) (bool, error) {
	return r.getFlag(ctx, KeySoundEnabled, DefaultSoundEnabled)
}

func (r *RedisStore) SetSoundEnabled(ctx context.Context, enabled bool) error {
	return r.setFlag(ctx, KeySoundEnabled, enabled)
}

func (r *RedisStore) VibrationEnabled(ctx context.Context) (bool, error) {
	return r.getFlag(ctx, KeyVibrationEnabled, DefaultVibrationEnabled)
}

func (r *RedisStore) SetVibrationEnabled(ctx context.Context, enabled bool) error {
	return r.setFlag(ctx, KeyVibrationEnabled, enabled)
}

func (r *RedisStore) Reset(ctx context.Context) error {
	keys := []string{
		r.key(KeyBestScore),
		r.key(KeyQuizzesCompleted),
		r.key(KeyQuestionsAnswered),
		r.key(KeyCorrectAnswers),
		r.key(KeySoundEnabled),
		r.key(KeyVibrationEnabled),
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	return nil
}
