package configs

type DB struct {
	URL            string `env:"DATABASE_URL,notEmpty"`
	MigrationsPath string `env:"DATABASE_MIGRATIONS_PATH" envDefault:"migrations"`
}
