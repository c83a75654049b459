package livekit

import (
	"fmt"
	"time"

	"github.com/livekit/protocol/auth"

	"github.com/vovakirdan/livekit-token-server/internal/token"
)

// DefaultTTL matches the validity LiveKit SDKs apply when none is set.
const DefaultTTL = 6 * time.Hour

// Signer implements token.Signer using the LiveKit server SDK.
type Signer struct {
	ttl time.Duration
}

// New creates a Signer issuing tokens valid for ttl. A non-positive ttl uses DefaultTTL.
func New(ttl time.Duration) *Signer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Signer{ttl: ttl}
}

// Sign builds and signs a LiveKit access token.
func (s *Signer) Sign(apiKey, apiSecret, identity, name string, grant token.Grant) (string, error) {
	at := auth.NewAccessToken(apiKey, apiSecret)
	video := &auth.VideoGrant{
		RoomJoin:       grant.RoomJoin,
		Room:           grant.Room,
		CanPublish:     &grant.CanPublish,
		CanSubscribe:   &grant.CanSubscribe,
		CanPublishData: &grant.CanPublishData,
	}
	at.SetVideoGrant(video).
		SetIdentity(identity).
		SetName(name).
		SetValidFor(s.ttl)

	jwt, err := at.ToJWT()
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return jwt, nil
}

// Ensure Signer implements token.Signer
var _ token.Signer = (*Signer)(nil)
