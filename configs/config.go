package configs

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

type RewardServiceConfig struct {
	App     App
	DB      DB
	Cache   Cache
	Logger  Logger
	HTTP    HTTP
	Rewards Rewards
	Wallet  Wallet
}

type RewardBotConfig struct {
	App     App
	Bot     Bot
	DB      DB
	Cache   Cache
	Logger  Logger
	HTTP    HTTP
	Rewards Rewards
	Wallet  Wallet
}

type RewardSweeperConfig struct {
	App     App
	DB      DB
	Cache   Cache
	Logger  Logger
	Rewards Rewards
	Wallet  Wallet
	Sweeper Sweeper
}

func LoadRewardServiceConfig() (RewardServiceConfig, error) {
	var config RewardServiceConfig

	if err := env.Parse(&config); err != nil {
		return RewardServiceConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

func LoadRewardBotConfig() (RewardBotConfig, error) {
	var config RewardBotConfig

	if err := env.Parse(&config); err != nil {
		return RewardBotConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

func LoadRewardSweeperConfig() (RewardSweeperConfig, error) {
	var config RewardSweeperConfig

	if err := env.Parse(&config); err != nil {
		return RewardSweeperConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}
