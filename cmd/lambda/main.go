// Command lambda runs the time entry API as a cloud function behind an API
// gateway proxy integration.
package main

import (
	"context"
	"log"
	"path/filepath"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"

	"github.com/Aadithya-J/time_management/internal/app"
	"github.com/Aadithya-J/time_management/internal/config"
)

var adapter *ginadapter.GinLambda

func handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return adapter.ProxyWithContext(ctx, req)
}

// lambdaConfig adjusts the loaded config to the function runtime, where only
// /tmp is writable and static hosting serves the web client.
func lambdaConfig(cfg config.Config) config.Config {
	cfg.ServeFrontend = false
	if cfg.DBDriver == "sqlite" && cfg.DatabaseURL != ":memory:" && !filepath.IsAbs(cfg.DatabaseURL) {
		cfg.DatabaseURL = filepath.Join("/tmp", filepath.Base(cfg.DatabaseURL))
		log.Printf("sqlite database moved to %s", cfg.DatabaseURL)
	}
	return cfg
}

func main() {
	gin.SetMode(gin.ReleaseMode)
	cfg := lambdaConfig(config.Load())

	a, err := app.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}
	defer a.Close()

	adapter = ginadapter.New(a.Router)
	lambda.Start(handle)
}
