package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/kapu/slack-channel-provisioner/internal/app"
	"github.com/kapu/slack-channel-provisioner/internal/config"
	"github.com/kapu/slack-channel-provisioner/internal/domain"
	"github.com/kapu/slack-channel-provisioner/internal/util"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := util.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	specs, err := domain.LoadChannelSpecs(cfg.Inputs.ChannelsFile)
	if err != nil {
		logger.Fatal("Failed to load channel list", zap.Error(err))
	}

	invitees, err := domain.LoadInviteeSet(cfg.Inputs.InviteesFile)
	if err != nil {
		logger.Fatal("Failed to load invite users list", zap.Error(err))
	}

	container, err := app.Build(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to assemble services", zap.Error(err))
	}

	logger.Info("Starting channel provisioning run",
		zap.Int("channels", len(specs)),
		zap.Int("invitees", len(invitees)),
	)

	if err := container.Provisioner.Run(context.Background(), specs, invitees); err != nil {
		logger.Fatal("Provisioning run failed", zap.Error(err))
	}

	logger.Info("Provisioning run completed")
}
