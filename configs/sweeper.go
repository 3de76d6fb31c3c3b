package configs

type Sweeper struct {
	Cron string `env:"SWEEPER_CRON" envDefault:"5 0 * * *"`
}
