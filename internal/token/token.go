package token

import "errors"

var (
	// ErrCredentialsNotConfigured is returned when the API key or secret is missing.
	ErrCredentialsNotConfigured = errors.New("livekit credentials not configured")
	// ErrInvalidRequest is returned when a required request field is empty.
	ErrInvalidRequest = errors.New("invalid token request")
)

// Credentials holds the LiveKit API key pair used to sign tokens.
type Credentials struct {
	APIKey    string
	APISecret string
}

// Configured reports whether both halves of the key pair are set.
func (c Credentials) Configured() bool {
	return c.APIKey != "" && c.APISecret != ""
}

// Request is the body accepted by the token endpoint.
type Request struct {
	Room     string `json:"room"`
	Username string `json:"username"`
	UserID   string `json:"userId"`
}

// Response is the body returned on success.
type Response struct {
	Token string `json:"token"`
}

// Grant describes the room permissions embedded in a token.
type Grant struct {
	Room           string
	RoomJoin       bool
	CanPublish     bool
	CanSubscribe   bool
	CanPublishData bool
}

// FixedGrant returns the grant every issued token carries.
// Capabilities are never taken from the caller.
func FixedGrant(room string) Grant {
	return Grant{
		Room:           room,
		RoomJoin:       true,
		CanPublish:     true,
		CanSubscribe:   true,
		CanPublishData: true,
	}
}

// Signer produces a signed access token for an identity and grant.
type Signer interface {
	Sign(apiKey, apiSecret, identity, name string, grant Grant) (string, error)
}
