package di

import (
	"context"
	"time"

	zaploki "github.com/paul-milne/zap-loki"
	"go.uber.org/zap"
)

func NewLogger(appName, environment, lokiURL string) *zap.SugaredLogger {
	zapConfig := zap.NewProductionConfig()
	if environment == "dev" {
		zapConfig = zap.NewDevelopmentConfig()
	}

	if lokiURL == "" {
		return zap.Must(zapConfig.Build()).Sugar().With("app", appName)
	}

	ctx := context.Background()
	lokiConfig := zaploki.Config{
		Url:          lokiURL,
		BatchMaxSize: 1000,
		BatchMaxWait: 10 * time.Second,
		Labels:       map[string]string{"app": appName, "environment": environment},
	}
	return zap.Must(zaploki.New(ctx, lokiConfig).WithCreateLogger(zapConfig)).Sugar()
}
