package configs

type Logger struct {
	AppName string `env:"LOGGER_APP_NAME" envDefault:"vendor_rewards"`
	URL     string `env:"LOKI_URL"`
}
