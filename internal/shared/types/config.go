package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Profile   string `json:"profile" yaml:"profile" toml:"profile"`
	Start     string `json:"start" yaml:"start" toml:"start"`
	End       string `json:"end" yaml:"end" toml:"end"`
	OnlyTotal bool   `json:"only_total" yaml:"only_total" toml:"only_total"`
	Out       string `json:"out" yaml:"out" toml:"out"`
	Dir       string `json:"dir" yaml:"dir" toml:"dir"`
	Trend     bool   `json:"trend" yaml:"trend" toml:"trend"`
}

// EnvConfig holds the defaults read from the environment (and an optional .env file).
type EnvConfig struct {
	Profile   string `envconfig:"AWS_COST_REPORT_PROFILE"`
	Out       string `envconfig:"AWS_COST_REPORT_OUT"`
	Dir       string `envconfig:"AWS_COST_REPORT_DIR" default:"result"`
	OnlyTotal bool   `envconfig:"AWS_COST_REPORT_ONLY_TOTAL" default:"false"`
	Debug     bool   `envconfig:"AWS_COST_REPORT_DEBUG" default:"false"`
}
