package config

// Default values for optional configuration fields.
const (
	DefaultDBPort      = 3306
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultServerPort  = 8080
	DefaultMetricsPath = "/metrics"
)

func (c *Config) applyDefaults() {
	if c.Source.Port == 0 {
		c.Source.Port = DefaultDBPort
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}

	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerPort
	}
	if c.Server.MetricsPath == "" {
		c.Server.MetricsPath = DefaultMetricsPath
	}
}
