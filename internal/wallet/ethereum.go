package wallet

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"vendor_rewards/configs"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

var transferSelector = crypto.Keccak256([]byte("transfer(address,uint256)"))[:4]

type chainClient interface {
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}

// EthereumSink sends ERC-20 transfers from the treasury account.
type EthereumSink struct {
	client   chainClient
	token    common.Address
	key      *ecdsa.PrivateKey
	from     common.Address
	chainID  *big.Int
	decimals int
	logger   *zap.SugaredLogger

	// serializes nonce allocation
	mu sync.Mutex
}

func DialEthereumSink(ctx context.Context, config configs.Wallet, logger *zap.SugaredLogger) (*EthereumSink, error) {
	if config.RPCURL == "" {
		return nil, errors.New("WALLET_RPC_URL is required when WALLET_METHOD=direct")
	}
	if !common.IsHexAddress(config.TokenContract) {
		return nil, fmt.Errorf("invalid WALLET_TOKEN_CONTRACT: %q", config.TokenContract)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(config.TreasuryKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse treasury key: %w", err)
	}

	client, err := ethclient.DialContext(ctx, config.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}

	return newEthereumSink(client, common.HexToAddress(config.TokenContract), key, big.NewInt(config.ChainID), config.TokenDecimals, logger), nil
}

func newEthereumSink(client chainClient, token common.Address, key *ecdsa.PrivateKey, chainID *big.Int, decimals int, logger *zap.SugaredLogger) *EthereumSink {
	return &EthereumSink{
		client:   client,
		token:    token,
		key:      key,
		from:     crypto.PubkeyToAddress(key.PublicKey),
		chainID:  chainID,
		decimals: decimals,
		logger:   logger,
	}
}

func (s *EthereumSink) Transfer(ctx context.Context, walletAddress string, amount int64) (string, error) {
	if !common.IsHexAddress(walletAddress) {
		return "", fmt.Errorf("%w: %s", ErrInvalidAddress, walletAddress)
	}
	if amount <= 0 {
		return "", fmt.Errorf("invalid transfer amount: %d", amount)
	}

	data := transferData(common.HexToAddress(walletAddress), tokenUnits(amount, s.decimals))

	s.mu.Lock()
	defer s.mu.Unlock()

	nonce, err := s.client.PendingNonceAt(ctx, s.from)
	if err != nil {
		return "", fmt.Errorf("failed to get nonce: %w", err)
	}

	gasPrice, err := s.client.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to suggest gas price: %w", err)
	}

	gas, err := s.client.EstimateGas(ctx, ethereum.CallMsg{From: s.from, To: &s.token, Data: data})
	if err != nil {
		return "", fmt.Errorf("failed to estimate gas: %w", err)
	}

	tx := types.NewTransaction(nonce, s.token, big.NewInt(0), gas, gasPrice, data)

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(s.chainID), s.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err = s.client.SendTransaction(ctx, signed); err != nil {
		return "", fmt.Errorf("failed to send transaction: %w", err)
	}

	s.logger.Infow("token transfer sent", "to", walletAddress, "amount", amount, "tx", signed.Hash().Hex())

	return signed.Hash().Hex(), nil
}

func transferData(to common.Address, amount *big.Int) []byte {
	data := make([]byte, 0, 4+32+32)
	data = append(data, transferSelector...)
	data = append(data, common.LeftPadBytes(to.Bytes(), 32)...)
	data = append(data, common.LeftPadBytes(amount.Bytes(), 32)...)
	return data
}
