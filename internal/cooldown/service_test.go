package cooldown

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/FichasBot_Go/internal/domain"
)

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time { return f.now }

func ms(t time.Time) *int64 {
	v := t.UnixMilli()
	return &v
}

func TestChecker_Remaining(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewChecker(Config{}, fixedClock{now: now})

	tests := []struct {
		name     string
		lastUsed *int64
		cooldown time.Duration
		expected time.Duration
	}{
		{"never used", nil, time.Hour, 0},
		{"no cooldown configured", ms(now.Add(-time.Second)), 0, 0},
		{"cooldown elapsed", ms(now.Add(-2 * time.Hour)), time.Hour, 0},
		{"exactly elapsed", ms(now.Add(-time.Hour)), time.Hour, 0},
		{"still cooling", ms(now.Add(-15 * time.Minute)), time.Hour, 45 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Remaining(tt.lastUsed, tt.cooldown))
		})
	}
}

func TestChecker_Check(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewChecker(Config{}, fixedClock{now: now})

	t.Run("returns typed error while cooling", func(t *testing.T) {
		err := c.Check("lucky_charm", ms(now.Add(-90*time.Second)), 5*time.Minute)

		var cdErr ErrOnCooldown
		assert.True(t, errors.As(err, &cdErr))
		assert.Equal(t, "lucky_charm", cdErr.Action)
		assert.Equal(t, 210*time.Second, cdErr.Remaining)
		assert.ErrorIs(t, err, domain.ErrOnCooldown)
		assert.Contains(t, err.Error(), "3m 30s")
	})

	t.Run("seconds only message", func(t *testing.T) {
		err := c.Check("energy_drink", ms(now.Add(-50*time.Second)), time.Minute)
		assert.Contains(t, err.Error(), "10s")
		assert.NotContains(t, err.Error(), "m ")
	})

	t.Run("nil when ready", func(t *testing.T) {
		assert.NoError(t, c.Check("energy_drink", nil, time.Minute))
	})

	t.Run("dev mode bypasses", func(t *testing.T) {
		dev := NewChecker(Config{DevMode: true}, fixedClock{now: now})
		assert.NoError(t, dev.Check("energy_drink", ms(now), time.Hour))
	})
}

func TestChecker_IsEffectActive(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewChecker(Config{}, fixedClock{now: now})

	assert.False(t, c.IsEffectActive(nil, time.Hour), "never used")
	assert.False(t, c.IsEffectActive(ms(now), 0), "no duration")
	assert.True(t, c.IsEffectActive(ms(now.Add(-30*time.Minute)), time.Hour))
	assert.False(t, c.IsEffectActive(ms(now.Add(-time.Hour)), time.Hour), "window end is exclusive")
	assert.False(t, c.IsEffectActive(ms(now.Add(-2*time.Hour)), time.Hour))
}

func TestChecker_DefaultsToSystemClock(t *testing.T) {
	c := NewChecker(Config{}, nil)
	assert.InDelta(t, time.Now().UnixMilli(), c.NowMs(), 1000)
}
