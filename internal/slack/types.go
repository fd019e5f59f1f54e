package slack

// apiResponse is the envelope every Slack Web API response carries. On
// failure, Error holds the declared error code and Needed the permission
// scopes the API says were missing.
type apiResponse struct {
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
	Needed string `json:"needed,omitempty"`
}

func (r *apiResponse) envelope() *apiResponse { return r }

// response is implemented by every typed API response via apiResponse
// embedding, so the client can check the ok flag generically.
type response interface {
	envelope() *apiResponse
}

// Channel is the subset of the Slack conversation object this tool reads.
type Channel struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsPrivate bool   `json:"is_private"`
}

type listChannelsResponse struct {
	apiResponse
	Channels []Channel `json:"channels"`
}

type createChannelRequest struct {
	Name      string `json:"name"`
	IsPrivate bool   `json:"is_private"`
}

type createChannelResponse struct {
	apiResponse
	Channel Channel `json:"channel"`
}

type setPurposeRequest struct {
	Channel string `json:"channel"`
	Purpose string `json:"purpose"`
}

type setPurposeResponse struct {
	apiResponse
}

type inviteUsersRequest struct {
	Channel string `json:"channel"`
	Users   string `json:"users"`
}

type inviteUsersResponse struct {
	apiResponse
}
