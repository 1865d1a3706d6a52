package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mikey/email-triage/internal/di"
	"github.com/mikey/email-triage/internal/ports"
	"go.uber.org/zap"
)

func main() {
	flags := di.ParseFlags()

	container, err := di.BuildCLIContainer(flags)
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	if err := container.Invoke(run); err != nil {
		fmt.Printf("Application error: %v\n", err)
		os.Exit(1)
	}
}

// run triages one email and exits
func run(logger *zap.Logger, emailFilter ports.EmailFilter) error {
	defer logger.Sync()

	startTime := time.Now()
	if err := emailFilter.Run(context.Background()); err != nil {
		logger.Error("Failed to triage email", zap.Error(err))
		return err
	}

	logger.Debug("Triage complete", zap.Duration("duration", time.Since(startTime)))
	return nil
}
