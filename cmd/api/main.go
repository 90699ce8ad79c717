package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "carport_configurator/docs"
	"carport_configurator/internal/cli"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Carport Configurator API
// @version         1.0
// @description     Configuration composition, pricing and catalog service for the wood and iron carport lines.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
