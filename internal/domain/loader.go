package domain

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/kapu/slack-channel-provisioner/pkg/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadChannelSpecs reads the declarative channel list from path. Order is
// preserved; creation later happens in exactly this order.
func LoadChannelSpecs(path string) ([]*ChannelSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError("failed to read channels file", path).WithCause(err)
	}

	var specs []*ChannelSpec
	if err := json.Unmarshal(data, &specs); err != nil {
		return nil, errors.NewConfigError("failed to parse channels file", path).WithCause(err)
	}

	for i, spec := range specs {
		if spec == nil {
			return nil, errors.NewConfigError(fmt.Sprintf("channel entry %d is null", i), path)
		}
		if err := validate.Struct(spec); err != nil {
			return nil, errors.NewConfigError(fmt.Sprintf("channel entry %d is invalid", i), path).WithCause(err)
		}
	}

	return specs, nil
}

// inviteesDocument is the on-disk envelope: {"users": ["U01...", ...]}.
type inviteesDocument struct {
	Users []string `json:"users"`
}

// LoadInviteeSet reads the invitee list from path, preserving order.
func LoadInviteeSet(path string) (InviteeSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError("failed to read invite users file", path).WithCause(err)
	}

	var doc inviteesDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewConfigError("failed to parse invite users file", path).WithCause(err)
	}

	return InviteeSet(doc.Users), nil
}
