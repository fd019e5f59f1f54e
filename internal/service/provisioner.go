package service

import (
	"context"
	stderrors "errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/kapu/slack-channel-provisioner/internal/domain"
	"github.com/kapu/slack-channel-provisioner/internal/slack"
	"github.com/kapu/slack-channel-provisioner/pkg/errors"
)

// SlackAPI is the slice of the Slack client the provisioner consumes.
type SlackAPI interface {
	ListChannels(ctx context.Context) ([]slack.Channel, error)
	CreateChannel(ctx context.Context, name string, isPrivate bool) (*slack.Channel, error)
	SetPurpose(ctx context.Context, channelID, purpose string) error
	InviteUsers(ctx context.Context, channelID string, userIDs []string) error
}

// Provisioner drives the whole batch: read remote state, gate on name
// collisions, then create/describe/invite each channel strictly in input
// order, stopping at the first failure. The limiter spaces consecutive
// channel creations to stay under Slack's rate limits.
type Provisioner struct {
	api     SlackAPI
	limiter *rate.Limiter
	logger  *zap.Logger
}

func NewProvisioner(api SlackAPI, provisionInterval time.Duration, logger *zap.Logger) *Provisioner {
	return &Provisioner{
		api:     api,
		limiter: rate.NewLimiter(rate.Every(provisionInterval), 1),
		logger:  logger,
	}
}

// ListExistingChannels returns the current non-archived channels. Lookup
// failures are logged and collapse to an empty slice; callers cannot tell
// "no channels" from "lookup failed" here, matching the conversations.list
// degradation the rest of the workflow is built around.
func (p *Provisioner) ListExistingChannels(ctx context.Context) []domain.ExistingChannel {
	channels, err := p.api.ListChannels(ctx)
	if err != nil {
		p.logOperationFailure("conversations.list", "", err)
		return nil
	}

	existing := make([]domain.ExistingChannel, 0, len(channels))
	for _, ch := range channels {
		existing = append(existing, domain.ExistingChannel{ID: ch.ID, Name: ch.Name})
	}
	return existing
}

// FindCollisions returns every desired name that already exists remotely or
// appears more than once in the desired list itself, in desired-list order.
func FindCollisions(desired []*domain.ChannelSpec, existing []domain.ExistingChannel) []string {
	taken := make(map[string]bool, len(existing))
	for _, ch := range existing {
		taken[ch.Name] = true
	}

	var collisions []string
	reported := make(map[string]bool)
	for _, spec := range desired {
		if taken[spec.Name] && !reported[spec.Name] {
			collisions = append(collisions, spec.Name)
			reported[spec.Name] = true
		}
		taken[spec.Name] = true
	}
	return collisions
}

// Run executes the full workflow. Any collision aborts before the first
// creation; any provisioning failure stops the batch, leaving earlier
// channels in place.
func (p *Provisioner) Run(ctx context.Context, specs []*domain.ChannelSpec, invitees domain.InviteeSet) error {
	existing := p.ListExistingChannels(ctx)

	if collisions := FindCollisions(specs, existing); len(collisions) > 0 {
		p.logger.Error("Duplicate channel names found, aborting run",
			zap.Strings("channels", collisions),
		)
		return errors.NewCollisionError(collisions)
	}

	for _, spec := range specs {
		if err := p.limiter.Wait(ctx); err != nil {
			return err
		}

		if err := p.Provision(ctx, spec, invitees); err != nil {
			p.logger.Error("Channel provisioning failed, stopping batch",
				zap.String("channel", spec.Name),
				zap.Error(err),
			)
			return err
		}
	}

	p.logger.Info("All channels provisioned", zap.Int("count", len(specs)))
	return nil
}

// Provision creates one channel, sets its purpose, and invites the configured
// users, in that order. The first failing step is terminal; a channel left
// behind half-configured is not rolled back.
func (p *Provisioner) Provision(ctx context.Context, spec *domain.ChannelSpec, invitees domain.InviteeSet) error {
	p.logger.Info("Creating channel",
		zap.String("channel", spec.Name),
		zap.String("visibility", spec.Visibility()),
	)

	channel, err := p.api.CreateChannel(ctx, spec.Name, spec.IsPrivate)
	if err != nil {
		p.logOperationFailure("conversations.create", spec.Name, err)
		return err
	}

	if err := p.api.SetPurpose(ctx, channel.ID, spec.Description); err != nil {
		p.logOperationFailure("conversations.setPurpose", spec.Name, err)
		return err
	}

	p.logger.Info("Channel created and purpose set",
		zap.String("channel", spec.Name),
		zap.String("channel_id", channel.ID),
	)

	if invitees.IsEmpty() {
		return nil
	}

	if err := p.api.InviteUsers(ctx, channel.ID, invitees); err != nil {
		p.logOperationFailure("conversations.invite", spec.Name, err)
		return errors.NewInviteError(channel.ID, err)
	}

	p.logger.Info("Invited users to channel",
		zap.String("channel", spec.Name),
		zap.Int("user_count", len(invitees)),
	)
	return nil
}

func (p *Provisioner) logOperationFailure(operation, channelName string, err error) {
	fields := []zap.Field{
		zap.String("operation", operation),
		zap.Error(err),
	}
	if channelName != "" {
		fields = append(fields, zap.String("channel", channelName))
	}

	var apiErr *errors.APIError
	if stderrors.As(err, &apiErr) {
		fields = append(fields,
			zap.String("error_code", apiErr.SlackCode),
			zap.String("needed_permissions", apiErr.Needed),
		)
	}

	p.logger.Error("Slack API call failed", fields...)
}
