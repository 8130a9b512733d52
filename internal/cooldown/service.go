package cooldown

import (
	"fmt"
	"time"

	"github.com/osse101/FichasBot_Go/internal/domain"
)

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now
func SystemClock() Clock {
	return systemClock{}
}

// Checker evaluates item cooldowns and effect windows from lastUsed timestamps
type Checker interface {
	// Remaining returns how long until an item used at lastUsedMs may be used again
	Remaining(lastUsedMs *int64, cooldown time.Duration) time.Duration

	// Check returns ErrOnCooldown if the item is still cooling down
	Check(action string, lastUsedMs *int64, cooldown time.Duration) error

	// IsEffectActive reports whether an effect started at lastUsedMs is still running
	IsEffectActive(lastUsedMs *int64, duration time.Duration) bool

	// NowMs returns the checker's current time in epoch milliseconds
	NowMs() int64
}

// ErrOnCooldown is returned when action is still on cooldown
type ErrOnCooldown struct {
	Action    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	minutes := int(e.Remaining.Minutes())
	seconds := int(e.Remaining.Seconds()) % SecondsPerMinute

	if minutes > 0 {
		return fmt.Sprintf(ErrFmtCooldownWithMinutes, e.Action, minutes, seconds)
	}
	return fmt.Sprintf(ErrFmtCooldownSecondsOnly, e.Action, seconds)
}

// Is allows errors.Is() to match both ErrOnCooldown values and domain.ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	if target == domain.ErrOnCooldown {
		return true
	}
	_, ok := target.(ErrOnCooldown)
	return ok
}

type checker struct {
	cfg   Config
	clock Clock
}

// NewChecker creates a cooldown checker. A nil clock uses the system clock.
func NewChecker(cfg Config, clock Clock) Checker {
	if clock == nil {
		clock = SystemClock()
	}
	return &checker{cfg: cfg, clock: clock}
}

func (c *checker) NowMs() int64 {
	return c.clock.Now().UnixMilli()
}

func (c *checker) Remaining(lastUsedMs *int64, cooldown time.Duration) time.Duration {
	if c.cfg.DevMode || lastUsedMs == nil || cooldown <= 0 {
		return 0
	}
	elapsed := time.Duration(c.NowMs()-*lastUsedMs) * time.Millisecond
	if elapsed >= cooldown {
		return 0
	}
	return cooldown - elapsed
}

func (c *checker) Check(action string, lastUsedMs *int64, cooldown time.Duration) error {
	if remaining := c.Remaining(lastUsedMs, cooldown); remaining > 0 {
		return ErrOnCooldown{Action: action, Remaining: remaining}
	}
	return nil
}

func (c *checker) IsEffectActive(lastUsedMs *int64, duration time.Duration) bool {
	if lastUsedMs == nil || duration <= 0 {
		return false
	}
	return c.NowMs() < *lastUsedMs+duration.Milliseconds()
}
