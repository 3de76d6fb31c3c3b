package configs

type App struct {
	Environment string `env:"ENVIRONMENT,notEmpty"`
	Timezone    string `env:"REWARDS_TIMEZONE" envDefault:"UTC"`
}

func (c App) IsDevEnvironment() bool {
	return c.Environment == "dev"
}
