package di

import (
	"flag"
	"strings"

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

// CLIFlags contains all command line flags for the CLI application
type CLIFlags struct {
	// Input flags
	InputFile   string
	Interactive bool

	// Triage flags
	DictionaryFile string
	TrustedDomains string
	MaxBodySize    int

	// Output flags
	JSONOutput bool
	Verbose    bool
	JSONLog    bool
	ConfigFile string
}

// ParseFlags parses command line flags and returns a CLIFlags struct
func ParseFlags() *CLIFlags {
	flags := &CLIFlags{}

	flag.StringVar(&flags.InputFile, "file", "", "Input email file (use stdin if not specified)")
	flag.BoolVar(&flags.Interactive, "interactive", false, "Prompt for sender/subject/body instead of parsing a message")

	flag.StringVar(&flags.DictionaryFile, "dictionary", "", "YAML term-dictionary file (overrides built-in terms)")
	flag.StringVar(&flags.TrustedDomains, "trusted", "", "Comma-separated list of trusted sender domains")
	flag.IntVar(&flags.MaxBodySize, "max-body-size", 0, "Maximum email body size to analyze (0 = unlimited)")

	flag.BoolVar(&flags.JSONOutput, "json", false, "Print the decision as JSON")
	flag.BoolVar(&flags.Verbose, "verbose", false, "Enable verbose logging")
	flag.BoolVar(&flags.JSONLog, "json-log", false, "Output logs in JSON format")
	flag.StringVar(&flags.ConfigFile, "config", "", "Path to config file (overrides command line flags)")

	flag.Parse()
	return flags
}

// BuildCLIContainer creates and configures a dependency injection container for the CLI application
func BuildCLIContainer(flags *CLIFlags) (*dig.Container, error) {
	container := dig.New()

	// Register flags
	if err := container.Provide(func() *CLIFlags { return flags }); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(func(flags *CLIFlags) (*zap.Logger, error) {
		return logging.InitConsoleLogger(flags.Verbose, flags.JSONLog)
	}); err != nil {
		return nil, err
	}

	// Register configuration
	if err := container.Provide(func(flags *CLIFlags, logger *zap.Logger) (*config.Config, error) {
		if flags.ConfigFile != "" {
			cfg, err := config.New()
			if err != nil {
				return nil, err
			}
			logger.Info("Loaded configuration from file", zap.String("file", cfg.GetViper().ConfigFileUsed()))
			return cfg, nil
		}

		// Create config from command line flags
		return createConfigFromFlags(flags), nil
	}); err != nil {
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

// createConfigFromFlags creates a configuration from command line flags
func createConfigFromFlags(flags *CLIFlags) *config.Config {
	v := config.NewEmptyViper()

	if flags.Interactive {
		v.Set("server.filter_type", "console")
	} else {
		v.Set("server.filter_type", "eml")
	}
	v.Set("cli.verbose", flags.Verbose)

	v.Set("triage.input_file", flags.InputFile)
	v.Set("triage.json_output", flags.JSONOutput)
	v.Set("triage.dictionary_file", flags.DictionaryFile)
	v.Set("triage.max_body_size", flags.MaxBodySize)

	if flags.TrustedDomains != "" {
		domains := strings.Split(flags.TrustedDomains, ",")
		for i, domain := range domains {
			domains[i] = strings.TrimSpace(domain)
		}
		v.Set("triage.trusted_domains", domains)
	} else {
		v.Set("triage.trusted_domains", []string{})
	}

	return config.NewFromViper(v)
}
