package constants

import "time"

var APIConfig = struct {
	SlackBaseURL string
}{
	SlackBaseURL: "https://slack.com/api/",
}

var HTTPConfig = struct {
	RequestTimeout time.Duration
}{
	RequestTimeout: 10 * time.Second,
}

var ThrottleConfig = struct {
	ProvisionInterval time.Duration
}{
	ProvisionInterval: 1 * time.Second, // Slack rate-limit headroom between channel creations
}

var InputConfig = struct {
	ChannelsFile string
	InviteesFile string
}{
	ChannelsFile: "channels.json",
	InviteesFile: "invite_users.json",
}
