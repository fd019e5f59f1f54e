package errors

import "fmt"

// Error codes
const (
	CodeConfig    = "CONFIG_ERROR"
	CodeTransport = "TRANSPORT_ERROR"
	CodeAPI       = "API_ERROR"
	CodeCollision = "COLLISION_ERROR"
	CodeInvite    = "INVITE_ERROR"
)

// ProvisionError is the base error for every failure in the provisioning
// workflow. All operations signal failure through this family; nothing in the
// pipeline panics or returns bare status flags.
type ProvisionError struct {
	Message string
	Code    string
	Context map[string]any
	Cause   error
}

func (e *ProvisionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ProvisionError) Unwrap() error {
	return e.Cause
}

func (e *ProvisionError) WithCause(cause error) *ProvisionError {
	e.Cause = cause
	return e
}

// ConfigError covers missing or malformed input documents and invalid
// environment configuration. Always raised before any network call.
type ConfigError struct {
	*ProvisionError
	Source string
}

func NewConfigError(message, source string) *ConfigError {
	return &ConfigError{
		ProvisionError: &ProvisionError{
			Message: message,
			Code:    CodeConfig,
			Context: map[string]any{
				"source": source,
			},
		},
		Source: source,
	}
}

func (e *ConfigError) WithCause(cause error) *ConfigError {
	e.Cause = cause
	return e
}

// TransportError covers network-level failures: connection errors, timeouts,
// and non-2xx HTTP statuses where no Slack envelope was decoded.
type TransportError struct {
	*ProvisionError
	Operation string
}

func NewTransportError(operation string, cause error) *TransportError {
	return &TransportError{
		ProvisionError: &ProvisionError{
			Message: fmt.Sprintf("%s request failed", operation),
			Code:    CodeTransport,
			Context: map[string]any{
				"operation": operation,
			},
			Cause: cause,
		},
		Operation: operation,
	}
}

// APIError means Slack answered with ok:false. SlackCode carries the declared
// error string and Needed the required-permissions hint when the API sent one.
type APIError struct {
	*ProvisionError
	Operation string
	SlackCode string
	Needed    string
}

func NewAPIError(operation, slackCode, needed string) *APIError {
	return &APIError{
		ProvisionError: &ProvisionError{
			Message: fmt.Sprintf("%s API error: %s", operation, slackCode),
			Code:    CodeAPI,
			Context: map[string]any{
				"operation":  operation,
				"slack_code": slackCode,
				"needed":     needed,
			},
		},
		Operation: operation,
		SlackCode: slackCode,
		Needed:    needed,
	}
}

// CollisionError aborts a batch whose desired names overlap existing channels
// or each other. No creation happens in a run that raises it.
type CollisionError struct {
	*ProvisionError
	Names []string
}

func NewCollisionError(names []string) *CollisionError {
	return &CollisionError{
		ProvisionError: &ProvisionError{
			Message: fmt.Sprintf("duplicate channel names found: %v", names),
			Code:    CodeCollision,
			Context: map[string]any{
				"names": names,
			},
		},
		Names: names,
	}
}

// InviteError wraps a failure while inviting users to an already-created
// channel. The channel stays behind half-configured; the batch stops.
type InviteError struct {
	*ProvisionError
	ChannelID string
}

func NewInviteError(channelID string, cause error) *InviteError {
	return &InviteError{
		ProvisionError: &ProvisionError{
			Message: "failed to invite users to channel",
			Code:    CodeInvite,
			Context: map[string]any{
				"channel_id": channelID,
			},
			Cause: cause,
		},
		ChannelID: channelID,
	}
}
