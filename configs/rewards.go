package configs

// Rewards overrides the anti-abuse limits. Zero keeps a limit disabled.
type Rewards struct {
	WeeklyTokenCap      int64 `env:"REWARDS_WEEKLY_TOKEN_CAP" envDefault:"0"`
	DailyVendorVoteCap  int64 `env:"REWARDS_DAILY_VENDOR_VOTE_CAP" envDefault:"0"`
	DailyVoteCap        int64 `env:"REWARDS_DAILY_VOTE_CAP" envDefault:"0"`
	WeeklyVoteCap       int64 `env:"REWARDS_WEEKLY_VOTE_CAP" envDefault:"0"`
	SuspiciousLogLength int   `env:"REWARDS_SUSPICIOUS_LOG_LENGTH" envDefault:"50"`
}
