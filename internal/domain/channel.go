package domain

// ChannelSpec is one desired channel from the declarative channel list.
// Loaded once at startup and immutable afterwards.
type ChannelSpec struct {
	Name        string `json:"name" validate:"required,max=80"`
	Description string `json:"description"`
	IsPrivate   bool   `json:"is_private"`
}

// Visibility returns the spec's visibility as a log-friendly label.
func (s *ChannelSpec) Visibility() string {
	if s != nil && s.IsPrivate {
		return "private"
	}
	return "public"
}

// ExistingChannel is a snapshot of a remote channel at query time, used only
// for name comparison.
type ExistingChannel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// InviteeSet is the ordered list of user IDs invited to every new channel.
type InviteeSet []string

// IsEmpty reports whether there is nobody to invite.
func (s InviteeSet) IsEmpty() bool {
	return len(s) == 0
}
