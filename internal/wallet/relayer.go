package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

type transferRequest struct {
	WalletAddress string `json:"walletAddress"`
	Amount        int64  `json:"amount"`
	AuthToken     string `json:"authToken"`
}

type transferResponse struct {
	TxHash string `json:"txHash"`
}

// RelayerSink hands transfers to a relayer service that owns the treasury key.
type RelayerSink struct {
	url          string
	authToken    string
	client       *http.Client
	maxRetryTime time.Duration
	logger       *zap.SugaredLogger
}

func NewRelayerSink(url, authToken string, timeout, maxRetryTime time.Duration, logger *zap.SugaredLogger) *RelayerSink {
	return &RelayerSink{
		url:          url,
		authToken:    authToken,
		client:       &http.Client{Timeout: timeout},
		maxRetryTime: maxRetryTime,
		logger:       logger,
	}
}

func (s *RelayerSink) Transfer(ctx context.Context, walletAddress string, amount int64) (string, error) {
	jsonData, err := json.Marshal(transferRequest{
		WalletAddress: walletAddress,
		Amount:        amount,
		AuthToken:     s.authToken,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal transfer request: %w", err)
	}

	var txHash string

	operation := func() error {
		txHash, err = s.send(ctx, jsonData)
		return err
	}

	backoffConfig := backoff.NewExponentialBackOff()
	backoffConfig.InitialInterval = 200 * time.Millisecond
	backoffConfig.Multiplier = 1.5
	backoffConfig.MaxInterval = 2 * time.Second
	backoffConfig.MaxElapsedTime = s.maxRetryTime

	notify := func(err error, wait time.Duration) {
		s.logger.Warnw("relayer transfer failed, retrying", "error", err, "wait", wait)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(backoffConfig, ctx), notify); err != nil {
		return "", fmt.Errorf("failed to transfer tokens via relayer: %w", err)
	}

	return txHash, nil
}

func (s *RelayerSink) send(ctx context.Context, body []byte) (string, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/transfer", s.url), bytes.NewBuffer(body))
	if err != nil {
		return "", backoff.Permanent(err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := s.client.Do(request)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()

	if response.StatusCode >= 400 && response.StatusCode < 500 {
		return "", backoff.Permanent(fmt.Errorf("relayer rejected transfer, status code: %d", response.StatusCode))
	}
	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("relayer failed transfer, status code: %d", response.StatusCode)
	}

	var decoded transferResponse
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		return "", backoff.Permanent(fmt.Errorf("failed to decode relayer response: %w", err))
	}
	if decoded.TxHash == "" {
		return "", backoff.Permanent(fmt.Errorf("relayer returned no transaction hash"))
	}

	return decoded.TxHash, nil
}
