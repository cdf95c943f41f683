package config

type Config struct {
	// Server settings
	Server ServerConfig `json:"server"`

	// Session settings
	Session SessionConfig `json:"session"`

	// Security settings
	Security SecurityConfig `json:"security"`

	// Logging settings
	Logging LoggingConfig `json:"logging"`

	// Ingest worker settings
	Ingest IngestConfig `json:"ingest"`

	// Currency converter settings
	Currency CurrencyConfig `json:"currency"`
}

type ServerConfig struct {
	Host         string   `json:"host" default:"localhost"`
	Port         int      `json:"port" default:"8080"`
	ReadTimeout  int      `json:"read_timeout" default:"30"`  // seconds
	WriteTimeout int      `json:"write_timeout" default:"30"` // seconds
	IdleTimeout  int      `json:"idle_timeout" default:"120"` // seconds
	GracefulStop int      `json:"graceful_stop" default:"30"` // seconds
	CORSOrigins  []string `json:"cors_origins"`
}

type SessionConfig struct {
	CookieName   string `json:"cookie_name" default:"tripboard_session"`
	Secret       string `json:"secret"`
	MaxAgeDays   int    `json:"max_age_days" default:"7"`
	CookieSecure bool   `json:"cookie_secure" default:"false"`
}

type SecurityConfig struct {
	RateLimitEnabled   bool `json:"rate_limit_enabled" default:"true"`
	RateLimitPerMinute int  `json:"rate_limit_per_minute" default:"120"`
	RateLimitBurstSize int  `json:"rate_limit_burst_size" default:"20"`
}

type LoggingConfig struct {
	Level      string `json:"level" default:"info"`    // debug, info, warn, error
	Format     string `json:"format" default:"json"`   // json, text
	Output     string `json:"output" default:"stdout"` // stdout, file
	FilePath   string `json:"file_path" default:"logs/tripboard.log"`
	MaxSize    int    `json:"max_size" default:"100"` // MB
	MaxBackups int    `json:"max_backups" default:"3"`
	MaxAge     int    `json:"max_age" default:"28"` // days
	Compress   bool   `json:"compress" default:"true"`
}

type IngestConfig struct {
	WorkerCount int `json:"worker_count" default:"2"`
	QueueSize   int `json:"queue_size" default:"16"`
	// Photos wider than this are downscaled before embedding.
	MaxImageWidth int `json:"max_image_width" default:"1280"`
}

type CurrencyConfig struct {
	// Rate converts the trip's local currency to the home currency
	// for display. 1 PHP ≈ 0.56 TWD.
	Rate float64 `json:"rate" default:"0.56"`
}
