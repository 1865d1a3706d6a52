package di

import (
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/email-triage/internal/config"
	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/engine"
	"github.com/mikey/email-triage/internal/factory"
	"github.com/mikey/email-triage/internal/logging"
	"github.com/mikey/email-triage/internal/ports"
	"github.com/mikey/email-triage/internal/rules"
	"github.com/mikey/email-triage/internal/trust"
	"github.com/mikey/email-triage/internal/utils"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewDictionaryFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewTextProcessorFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewFilterFactory); err != nil {
		return nil, err
	}

	// Register term dictionary
	if err := container.Provide(func(f *factory.DictionaryFactory) (*rules.Dictionary, error) {
		return f.CreateDictionary()
	}); err != nil {
		return nil, err
	}

	// Register decision engine
	if err := container.Provide(func(dict *rules.Dictionary) core.TriageEngine {
		return engine.New(dict)
	}); err != nil {
		return nil, err
	}

	// Register text processor
	if err := container.Provide(func(f *factory.TextProcessorFactory) *utils.TextProcessor {
		return f.CreateTextProcessor()
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(tp *utils.TextProcessor) core.TextSanitizer {
		return tp
	}); err != nil {
		return nil, err
	}

	// Register trusted-domain checker
	if err := container.Provide(func(cfg *config.Config, logger *zap.Logger) core.TrustChecker {
		return trust.NewChecker(cfg.GetStringSlice("triage.trusted_domains"), logger)
	}); err != nil {
		return nil, err
	}

	// Register max body size
	if err := container.Provide(func(cfg *config.Config) int {
		return cfg.GetInt("triage.max_body_size")
	}); err != nil {
		return nil, err
	}

	// Register triage service
	if err := container.Provide(core.NewTriageService); err != nil {
		return nil, err
	}

	// Register email filter
	if err := container.Provide(func(f *factory.FilterFactory) (ports.EmailFilter, error) {
		return f.CreateEmailFilter()
	}); err != nil {
		return nil, err
	}

	return container, nil
}
