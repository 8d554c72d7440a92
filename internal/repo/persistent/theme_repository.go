package persistent

import (
	"context"

	"github.com/redis/go-redis/v9"

	"social-spark/internal/entity"
)

// themeKey is the single durable preference key. It survives restarts; all
// other state is session-scoped and in-memory.
const themeKey = "social-spark:theme"

type ThemeRepository interface {
	Get(ctx context.Context) (entity.Theme, error)
	Set(ctx context.Context, theme entity.Theme) error
}

type themeRepository struct {
	rdb *redis.Client
}

func NewThemeRepository(rdb *redis.Client) ThemeRepository {
	return &themeRepository{rdb: rdb}
}

// Get reads the stored theme, falling back to the dark default when the key
// is absent or holds an unrecognized value.
func (r *themeRepository) Get(ctx context.Context) (entity.Theme, error) {
	val, err := r.rdb.Get(ctx, themeKey).Result()
	if err == redis.Nil {
		return entity.ThemeDark, nil
	}
	if err != nil {
		return entity.ThemeDark, err
	}
	return entity.NormalizeTheme(entity.Theme(val)), nil
}

func (r *themeRepository) Set(ctx context.Context, theme entity.Theme) error {
	return r.rdb.Set(ctx, themeKey, string(theme), 0).Err()
}
