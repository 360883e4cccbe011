package config

// Config is the root configuration for the player data source.
type Config struct {
	Source DBConfig     `yaml:"source"`
	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
}

// DBConfig holds the connection to the game database.
// The pool size is fixed by the database package and is not configurable.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"database_name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// ServerConfig holds the HTTP listener for health, metrics and record endpoints.
type ServerConfig struct {
	Port        int    `yaml:"port"`
	MetricsPath string `yaml:"metrics_path"`
}
