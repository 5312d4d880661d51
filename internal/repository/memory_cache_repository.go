package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// memoryCacheRepository держит кэш в памяти процесса. Используется как запасной
// вариант при недоступном редисе: сервис продолжает отвечать, но кэш не
// переживает рестарт и не делится между экземплярами.
type memoryCacheRepository struct {
	store *gocache.Cache
}

func NewMemoryCacheRepository() CacheRepository {
	return &memoryCacheRepository{
		store: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

// normalize приводит значение к строке так же, как это делает редис.
func normalize(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		jsonData, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to marshal value: %w", err)
		}
		return string(jsonData), nil
	}
}

func (r *memoryCacheRepository) Get(_ context.Context, key string) (string, error) {
	val, ok := r.store.Get(key)
	if !ok {
		return "", nil // Ключ не найден - это не ошибка
	}
	s, ok := val.(string)
	if !ok {
		return fmt.Sprintf("%v", val), nil
	}
	return s, nil
}

func (r *memoryCacheRepository) Set(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	s, err := normalize(value)
	if err != nil {
		return err
	}
	if expiration <= 0 {
		expiration = gocache.NoExpiration
	}
	r.store.Set(key, s, expiration)
	return nil
}

func (r *memoryCacheRepository) Delete(_ context.Context, key string) error {
	r.store.Delete(key)
	return nil
}

func (r *memoryCacheRepository) Exists(_ context.Context, key string) (bool, error) {
	_, ok := r.store.Get(key)
	return ok, nil
}

func (r *memoryCacheRepository) GetJSON(_ context.Context, key string, dest interface{}) error {
	val, ok := r.store.Get(key)
	if !ok {
		return nil // Ключ не найден
	}
	s, ok := val.(string)
	if !ok {
		s = fmt.Sprintf("%v", val)
	}
	return json.Unmarshal([]byte(s), dest)
}

func (r *memoryCacheRepository) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return r.Set(ctx, key, jsonData, expiration)
}

func (r *memoryCacheRepository) Increment(_ context.Context, key string) (int64, error) {
	if _, ok := r.store.Get(key); !ok {
		r.store.Set(key, int64(0), gocache.NoExpiration)
	}
	return r.store.IncrementInt64(key, 1)
}

// Keys поддерживает шаблоны вида "panchang:*", как KEYS в редисе.
func (r *memoryCacheRepository) Keys(_ context.Context, pattern string) ([]string, error) {
	var keys []string
	for key := range r.store.Items() {
		ok, err := path.Match(pattern, key)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if ok {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func (r *memoryCacheRepository) FlushAll(_ context.Context) error {
	r.store.Flush()
	return nil
}
