// Package wallet pushes earned tokens to users' external wallets.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"vendor_rewards/configs"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

var ErrInvalidAddress = errors.New("invalid wallet address")

// Sink moves amount tokens to walletAddress and returns a transaction reference.
type Sink interface {
	Transfer(ctx context.Context, walletAddress string, amount int64) (string, error)
}

// NewSink builds the sink selected by config. The disabled method yields a
// nil sink, which keeps every distribution pending.
func NewSink(ctx context.Context, config configs.Wallet, logger *zap.SugaredLogger) (Sink, error) {
	switch config.Method {
	case configs.WalletMethodDisabled, "":
		logger.Info("wallet distribution disabled")
		return nil, nil
	case configs.WalletMethodDirect:
		sink, err := DialEthereumSink(ctx, config, logger)
		if err != nil {
			return nil, err
		}
		return sink, nil
	case configs.WalletMethodRelayer:
		if config.RelayerURL == "" {
			return nil, errors.New("WALLET_RELAYER_URL is required when WALLET_METHOD=relayer")
		}
		return NewRelayerSink(config.RelayerURL, config.RelayerToken, config.RequestTimeout, config.MaxRetryTime, logger), nil
	default:
		return nil, fmt.Errorf("unknown wallet method: %s", config.Method)
	}
}

// NormalizeAddress validates an EVM address and returns its checksummed form.
func NormalizeAddress(address string) (string, error) {
	if !common.IsHexAddress(address) {
		return "", fmt.Errorf("%w: %s", ErrInvalidAddress, address)
	}

	return common.HexToAddress(address).Hex(), nil
}

// tokenUnits converts whole tokens into the smallest on-chain unit.
func tokenUnits(amount int64, decimals int) *big.Int {
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	return new(big.Int).Mul(big.NewInt(amount), scale)
}
