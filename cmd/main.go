package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/shelf/internal/models"
	"github.com/desertthunder/shelf/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	runner := NewRunner(RunnerOpts{Logger: logger})

	app := &cli.Command{
		Name:     "shelf",
		Usage:    "Manage a local catalog of books keyed by ISBN",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			logger.Error("please correct the following issues")
			for _, msg := range verr.Messages() {
				logger.Error(msg)
			}
			os.Exit(1)
		}
		logger.Fatalf("application error: %v", err)
	}
}
