package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/kapu/slack-channel-provisioner/pkg/errors"
)

// Client is a minimal Slack Web API client covering the four conversation
// operations the provisioner needs. The bearer credential is attached by an
// oauth2 static-token transport; it never appears in request payloads.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(baseURL, token string, timeout time.Duration, logger *zap.Logger) *Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(context.Background(), ts)
	httpClient.Timeout = timeout

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// ListChannels fetches all non-archived public and private channels in a
// single query.
func (c *Client) ListChannels(ctx context.Context) ([]Channel, error) {
	params := url.Values{
		"exclude_archived": []string{"true"},
		"types":            []string{"public_channel,private_channel"},
	}

	var resp listChannelsResponse
	if err := c.doGet(ctx, "conversations.list", params, &resp); err != nil {
		return nil, err
	}
	return resp.Channels, nil
}

// CreateChannel creates a channel with the given name and visibility.
func (c *Client) CreateChannel(ctx context.Context, name string, isPrivate bool) (*Channel, error) {
	req := createChannelRequest{
		Name:      name,
		IsPrivate: isPrivate,
	}

	var resp createChannelResponse
	if err := c.doPost(ctx, "conversations.create", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Channel, nil
}

// SetPurpose sets the channel's purpose text.
func (c *Client) SetPurpose(ctx context.Context, channelID, purpose string) error {
	req := setPurposeRequest{
		Channel: channelID,
		Purpose: purpose,
	}

	var resp setPurposeResponse
	return c.doPost(ctx, "conversations.setPurpose", req, &resp)
}

// InviteUsers invites every user ID to the channel in one batched call. The
// wire format is a single comma-joined list.
func (c *Client) InviteUsers(ctx context.Context, channelID string, userIDs []string) error {
	req := inviteUsersRequest{
		Channel: channelID,
		Users:   strings.Join(userIDs, ","),
	}

	var resp inviteUsersResponse
	return c.doPost(ctx, "conversations.invite", req, &resp)
}

func (c *Client) doGet(ctx context.Context, operation string, params url.Values, respBody response) error {
	reqURL := c.baseURL + operation
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return errors.NewTransportError(operation, err)
	}

	return c.do(operation, req, respBody)
}

func (c *Client) doPost(ctx context.Context, operation string, reqBody any, respBody response) error {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return errors.NewTransportError(operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+operation, bytes.NewReader(jsonData))
	if err != nil {
		return errors.NewTransportError(operation, err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	return c.do(operation, req, respBody)
}

func (c *Client) do(operation string, req *http.Request, respBody response) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewTransportError(operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return errors.NewTransportError(operation,
			fmt.Errorf("unexpected status %s: %s", resp.Status, string(bodyBytes)))
	}

	if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
		return errors.NewTransportError(operation, err)
	}

	if env := respBody.envelope(); !env.OK {
		c.logger.Debug("Slack API returned ok=false",
			zap.String("operation", operation),
			zap.String("error", env.Error),
			zap.String("needed", env.Needed),
		)
		return errors.NewAPIError(operation, env.Error, env.Needed)
	}

	return nil
}
