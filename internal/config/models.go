package config

// TriageConfig represents the configuration for the triage engine wrapper
type TriageConfig struct {
	DictionaryFile string
	TrustedDomains []string
	MaxBodySize    int
	InputFile      string
	JSONOutput     bool
}

// ServerConfig represents the front-end configuration
type ServerConfig struct {
	FilterType string
}

// LoggingConfig represents the logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// GetTriage returns the triage configuration
func (c *Config) GetTriage() TriageConfig {
	return TriageConfig{
		DictionaryFile: c.GetString("triage.dictionary_file"),
		TrustedDomains: c.GetStringSlice("triage.trusted_domains"),
		MaxBodySize:    c.GetInt("triage.max_body_size"),
		InputFile:      c.GetString("triage.input_file"),
		JSONOutput:     c.GetBool("triage.json_output"),
	}
}

// GetServer returns the front-end configuration
func (c *Config) GetServer() ServerConfig {
	return ServerConfig{
		FilterType: c.GetString("server.filter_type"),
	}
}

// GetLogging returns the logging configuration
func (c *Config) GetLogging() LoggingConfig {
	return LoggingConfig{
		Level:  c.GetString("logging.level"),
		Format: c.GetString("logging.format"),
	}
}
