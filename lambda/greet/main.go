package main

import (
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/duderman/greeter/internal/greeting"
	"github.com/duderman/greeter/internal/logging"
)

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	logger, err := logging.Init(getEnvOrDefault("LOG_LEVEL", "info"), getEnvOrDefault("LOG_FORMAT", "json"))
	if err != nil {
		log.Fatalf("init logging: %v", err)
	}

	tmpl := greeting.Extended()
	logger.Info("function starting", zap.String("template", tmpl.Name))

	h := greeting.NewHandler(tmpl, logger)
	lambda.StartWithOptions(h.Handle, lambda.WithEnableSIGTERM(func() {
		logger.Info("function shutting down")
		_ = logger.Sync()
	}))
}
