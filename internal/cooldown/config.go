package cooldown

// Config holds cooldown checker configuration
type Config struct {
	// DevMode bypasses all cooldowns when true
	DevMode bool
}
