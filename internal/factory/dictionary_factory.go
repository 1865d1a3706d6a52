package factory

import (
	"fmt"

	"github.com/mikey/email-triage/internal/config"
	"github.com/mikey/email-triage/internal/rules"
	"go.uber.org/zap"
)

// DictionaryFactory creates term dictionaries based on configuration
type DictionaryFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewDictionaryFactory creates a new dictionary factory
func NewDictionaryFactory(cfg *config.Config, logger *zap.Logger) *DictionaryFactory {
	return &DictionaryFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateDictionary returns the built-in dictionary, or the validated
// contents of triage.dictionary_file when one is configured.
func (f *DictionaryFactory) CreateDictionary() (*rules.Dictionary, error) {
	path := f.cfg.GetString("triage.dictionary_file")
	if path == "" {
		return rules.Default(), nil
	}

	dict, err := rules.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}

	f.logger.Info("Loaded dictionary override",
		zap.String("file", path),
		zap.Strings("categories", dict.Categories()))

	return dict, nil
}
