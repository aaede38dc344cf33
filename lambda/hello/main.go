package main

import (
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/duderman/greeter/internal/greeting"
	"github.com/duderman/greeter/internal/logging"
)

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func main() {
	logger, err := logging.Init(envOr("LOG_LEVEL", "info"), envOr("LOG_FORMAT", "json"))
	if err != nil {
		log.Fatalf("init logging: %v", err)
	}

	tmpl := greeting.Minimal()
	logger.Info("function starting", zap.String("template", tmpl.Name))

	h := greeting.NewHandler(tmpl, logger)
	lambda.StartWithOptions(h.Handle, lambda.WithEnableSIGTERM(func() {
		logger.Info("function shutting down")
		_ = logger.Sync()
	}))
}
