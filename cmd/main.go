package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/oldmonad/cloudsweep/internal/app"
	"github.com/oldmonad/cloudsweep/pkg/config/env"
	cerrors "github.com/oldmonad/cloudsweep/pkg/errors"
	"github.com/oldmonad/cloudsweep/pkg/logger"
	"github.com/oldmonad/cloudsweep/pkg/ports/cli"
	"github.com/oldmonad/cloudsweep/pkg/ports/rest"
	"github.com/oldmonad/cloudsweep/pkg/utils/validator"
	"go.uber.org/zap"
)

const envFile = ".env"

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cerrors.NewErrEnvLoad(envFile, err)
	}

	configurations, err := env.SetupConfigurations()
	if err != nil {
		return cerrors.NewErrConfigSetup(err)
	}

	provider, err := app.NewProvider(*configurations)
	if err != nil {
		return cerrors.NewErrConfigSetup(err)
	}

	appInstance := app.NewApp(provider)
	v := validator.NewValidator()
	server := rest.NewServer(appInstance, v)

	rootCmd := cli.NewCommand(appInstance, v, server, configurations).InitiateCommands()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.GetLogger().Error("Command failed", zap.Error(err))
		return err
	}
	return nil
}
