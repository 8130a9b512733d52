package catalog

// Embedded resource names
const (
	ItemsFileName   = "data/items.json"
	ItemsSchemaName = "items.schema.json"
	ItemsSchemaFile = "data/items.schema.json"
)

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read items config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse items config: %w"
	ErrMsgSchemaFailed         = "schema validation failed for %s: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil      = "config is nil"
	ErrMsgNoItemsDefined = "no items defined"
)

// Format strings for detailed validation errors
const (
	ErrFmtItemAtIndexEmpty     = "%w: item at index %d has empty id"
	ErrFmtItemHasEmptyName     = "%w: item '%s' has empty name"
	ErrFmtItemNegativePrice    = "%w: item '%s' has negative price"
	ErrFmtItemNegativeTiming   = "%w: item '%s' has negative cooldown or duration"
	ErrFmtItemBadCategory      = "%w: item '%s' has category '%s'"
	ErrFmtItemDurationNoEffect = "%w: item '%s' has a duration but no effect"
)

// Log messages
const (
	LogMsgCatalogLoaded = "Item catalog loaded"
)
