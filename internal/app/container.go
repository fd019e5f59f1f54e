package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/kapu/slack-channel-provisioner/internal/config"
	"github.com/kapu/slack-channel-provisioner/internal/service"
	"github.com/kapu/slack-channel-provisioner/internal/slack"
)

// Container bundles the assembled services for one provisioning run.
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	Provisioner *service.Provisioner
}

// Build wires the Slack client and the provisioner from configuration. No
// network traffic happens here; the first remote call is the state read at
// the start of the run.
func Build(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}

	client := slack.NewClient(cfg.Slack.BaseURL, cfg.Slack.Token, cfg.Slack.RequestTimeout, logger)
	provisioner := service.NewProvisioner(client, cfg.Throttle.ProvisionInterval, logger)

	return &Container{
		Config:      cfg,
		Logger:      logger,
		Provisioner: provisioner,
	}, nil
}
