package structures

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type StorageConfig struct {
	Dir         string `yaml:"dir" validate:"required|unixPath"`
	RecordsKey  string `yaml:"recordsKey" validate:"required"`
	SettingsKey string `yaml:"settingsKey" validate:"required"`
	Compress    bool   `yaml:"compress"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
	// TTL in seconds; entries are also invalidated by version bumps.
	TTL int `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// SettingsConfig seeds the user settings defaults. Locale falls back to $LANG.
type SettingsConfig struct {
	Locale string `yaml:"locale"`
}

type CalendarConfig struct {
	HolidaysFile string `yaml:"holidaysFile"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	WebServer Server         `yaml:"webServer"`
	Storage   StorageConfig  `yaml:"storage"`
	Logger    LoggerConfig   `yaml:"logger"`
	Cache     CacheConfig    `yaml:"cache"`
	Metrics   MetricsConfig  `yaml:"metrics"`
	Settings  SettingsConfig `yaml:"settings"`
	Calendar  CalendarConfig `yaml:"calendar"`
}
