package catalog

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/osse101/FichasBot_Go/internal/domain"
	"github.com/osse101/FichasBot_Go/internal/validation"
)

//go:embed data/items.json data/items.schema.json
var embedded embed.FS

// Sentinel errors for the catalog loader
var (
	ErrDuplicateID   = errors.New(domain.ErrMsgDuplicateItemID)
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config represents the JSON configuration for items
type Config struct {
	Version     string        `json:"version"`
	Description string        `json:"description"`
	Items       []domain.Item `json:"items"`
}

// Loader reads and validates item catalogs
type Loader interface {
	Load(path string) (*Config, error)
	LoadEmbedded() (*Config, error)
	Parse(data []byte, source string) (*Config, error)
	Validate(config *Config) error
}

type loader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a Loader with the catalog schema registered
func NewLoader() (Loader, error) {
	schema, err := embedded.ReadFile(ItemsSchemaFile)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	sv := validation.NewSchemaValidator()
	if err := sv.AddSchema(ItemsSchemaName, schema); err != nil {
		return nil, err
	}

	return &loader{schemaValidator: sv}, nil
}

// Load reads an items JSON file from disk
func (l *loader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}
	return l.Parse(data, path)
}

// LoadEmbedded reads the catalog compiled into the binary
func (l *loader) LoadEmbedded() (*Config, error) {
	data, err := embedded.ReadFile(ItemsFileName)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}
	return l.Parse(data, ItemsFileName)
}

// Parse schema-validates data, decodes it and runs semantic validation
func (l *loader) Parse(data []byte, source string) (*Config, error) {
	if err := l.schemaValidator.ValidateBytes(data, ItemsSchemaName); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, source, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	if err := l.Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the item configuration for errors the schema cannot express
func (l *loader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	ids := make(map[string]bool, len(config.Items))
	for i := range config.Items {
		if err := validateItem(i, &config.Items[i], ids); err != nil {
			return err
		}
	}

	return nil
}

func validateItem(index int, item *domain.Item, ids map[string]bool) error {
	if item.ID == "" {
		return fmt.Errorf(ErrFmtItemAtIndexEmpty, ErrInvalidConfig, index)
	}

	if ids[item.ID] {
		return fmt.Errorf("%w: '%s'", ErrDuplicateID, item.ID)
	}
	ids[item.ID] = true

	if item.Name == "" {
		return fmt.Errorf(ErrFmtItemHasEmptyName, ErrInvalidConfig, item.ID)
	}
	if item.Price < 0 {
		return fmt.Errorf(ErrFmtItemNegativePrice, ErrInvalidConfig, item.ID)
	}
	if item.CooldownMs < 0 || item.DurationMs < 0 {
		return fmt.Errorf(ErrFmtItemNegativeTiming, ErrInvalidConfig, item.ID)
	}
	if !item.Category.IsValid() {
		return fmt.Errorf(ErrFmtItemBadCategory, ErrInvalidConfig, item.ID, item.Category)
	}
	if item.DurationMs > 0 && !item.HasEffect() {
		return fmt.Errorf(ErrFmtItemDurationNoEffect, ErrInvalidConfig, item.ID)
	}

	return nil
}
