package configs

import "time"

const (
	WalletMethodDisabled = "disabled"
	WalletMethodDirect   = "direct"
	WalletMethodRelayer  = "relayer"
)

type Wallet struct {
	Method         string        `env:"WALLET_METHOD" envDefault:"disabled"`
	RPCURL         string        `env:"WALLET_RPC_URL"`
	ChainID        int64         `env:"WALLET_CHAIN_ID" envDefault:"1"`
	TokenContract  string        `env:"WALLET_TOKEN_CONTRACT"`
	TokenDecimals  int           `env:"WALLET_TOKEN_DECIMALS" envDefault:"18"`
	TreasuryKey    string        `env:"WALLET_TREASURY_PRIVATE_KEY"`
	RelayerURL     string        `env:"WALLET_RELAYER_URL"`
	RelayerToken   string        `env:"WALLET_RELAYER_AUTH_TOKEN"`
	RequestTimeout time.Duration `env:"WALLET_REQUEST_TIMEOUT" envDefault:"30s"`
	MaxRetryTime   time.Duration `env:"WALLET_MAX_RETRY_TIME" envDefault:"10s"`
}
