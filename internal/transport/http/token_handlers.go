package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/livekit-token-server/internal/token"
)

// Client-facing error messages. Details are only logged.
const (
	ErrMsgCredentialsNotConfigured = "LiveKit credentials not configured"
	ErrMsgTokenGeneration          = "Failed to generate token"
)

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// TokenHandlers serves the token endpoint.
type TokenHandlers struct {
	issuer *token.Issuer
	log    *zerolog.Logger
}

// NewTokenHandlers creates a new token handlers instance.
func NewTokenHandlers(issuer *token.Issuer, logger *zerolog.Logger) *TokenHandlers {
	return &TokenHandlers{
		issuer: issuer,
		log:    logger,
	}
}

// IssueToken mints a LiveKit access token for the requested room and user.
// POST /api/token
func (h *TokenHandlers) IssueToken(c *gin.Context) {
	requestID := c.GetString(ContextKeyRequestID)

	// The credentials gate runs before the body is read so that any body gets the same answer.
	if !h.issuer.Configured() {
		h.log.Error().Str("request_id", requestID).Msg("livekit credentials not configured")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: ErrMsgCredentialsNotConfigured})
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		h.log.Error().Err(err).Str("request_id", requestID).Msg("failed to read token request body")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: ErrMsgTokenGeneration})
		return
	}

	req, err := token.DecodeRequest(body)
	if err != nil {
		h.log.Error().Err(err).Str("request_id", requestID).Msg("invalid token request body")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: ErrMsgTokenGeneration})
		return
	}

	tok, err := h.issuer.Issue(c.Request.Context(), req)
	if err != nil {
		h.log.Error().Err(err).
			Str("request_id", requestID).
			Str("room", req.Room).
			Str("user_id", req.UserID).
			Msg("failed to generate livekit token")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: ErrMsgTokenGeneration})
		return
	}

	h.log.Info().Str("request_id", requestID).Str("room", req.Room).Str("user_id", req.UserID).Msg("livekit token issued")
	c.JSON(http.StatusOK, token.Response{Token: tok})
}
