package factory

import (
	"fmt"
	"os"

	"github.com/mikey/email-triage/internal/adapters/filter"
	"github.com/mikey/email-triage/internal/config"
	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/ports"
	"github.com/mikey/email-triage/internal/rules"
	"go.uber.org/zap"
)

// FilterFactory creates email filters based on configuration
type FilterFactory struct {
	cfg     *config.Config
	logger  *zap.Logger
	service *core.TriageService
	dict    *rules.Dictionary
}

// NewFilterFactory creates a new filter factory
func NewFilterFactory(
	cfg *config.Config,
	logger *zap.Logger,
	service *core.TriageService,
	dict *rules.Dictionary,
) *FilterFactory {
	return &FilterFactory{
		cfg:     cfg,
		logger:  logger,
		service: service,
		dict:    dict,
	}
}

// CreateEmailFilter creates an email filter based on the configuration
func (f *FilterFactory) CreateEmailFilter() (ports.EmailFilter, error) {
	filterType := f.cfg.GetString("server.filter_type")

	switch filterType {
	case "console":
		return filter.NewConsoleFilter(
			f.service,
			f.logger,
			f.dict.Categories(),
			os.Stdin,
			os.Stdout,
		)
	case "eml":
		return filter.NewEmlFilter(
			f.service,
			f.logger,
			f.dict.Categories(),
			f.cfg.GetString("triage.input_file"),
			f.cfg.GetBool("triage.json_output"),
			os.Stdout,
		)
	default:
		return nil, fmt.Errorf("unsupported filter type: %s", filterType)
	}
}
