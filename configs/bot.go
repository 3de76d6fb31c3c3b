package configs

type Bot struct {
	Token         string `env:"TELEGRAM_REWARD_BOT_TOKEN,notEmpty"`
	UpdateTimeout int    `env:"TELEGRAM_BOT_UPDATE_TIMEOUT" envDefault:"60"`
	HistoryLimit  int    `env:"TELEGRAM_BOT_HISTORY_LIMIT" envDefault:"10"`
}
