package cooldown

// Error message format strings (for ErrOnCooldown.Error())
const (
	// ErrFmtCooldownWithMinutes formats cooldown error with minutes and seconds
	ErrFmtCooldownWithMinutes = "You can use %s again in %dm %ds"

	// ErrFmtCooldownSecondsOnly formats cooldown error with seconds only
	ErrFmtCooldownSecondsOnly = "You can use %s again in %ds"
)

// SecondsPerMinute is used for time duration calculations
const SecondsPerMinute = 60
