package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/livekit-token-server/internal/config"
	"github.com/vovakirdan/livekit-token-server/internal/token"
	"github.com/vovakirdan/livekit-token-server/internal/token/livekit"
)

const (
	testAPIKey    = "devkey"
	testAPISecret = "devsecret-devsecret-devsecret-00"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// countingSigner wraps a signer and records how often it was called.
type countingSigner struct {
	next  token.Signer
	err   error
	calls atomic.Int32
}

func (s *countingSigner) Sign(apiKey, apiSecret, identity, name string, grant token.Grant) (string, error) {
	s.calls.Add(1)
	if s.err != nil {
		return "", s.err
	}
	return s.next.Sign(apiKey, apiSecret, identity, name, grant)
}

func newCountingSigner() *countingSigner {
	return &countingSigner{next: livekit.New(time.Hour)}
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Addr = ":0"
	cfg.ReadHeaderTimeout = time.Second
	cfg.ShutdownTimeout = time.Second
	return cfg
}

// newTestRouter builds a router whose issuer uses creds and signer.
func newTestRouter(t *testing.T, creds token.Credentials, signer token.Signer) http.Handler {
	t.Helper()

	disabledLogger := zerolog.New(nil)
	cfg := testConfig()
	return NewRouter(token.NewIssuer(creds, signer), &cfg, &disabledLogger)
}

func validCreds() token.Credentials {
	return token.Credentials{APIKey: testAPIKey, APISecret: testAPISecret}
}

func postToken(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/token", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	return resp
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()

	var errResp ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("failed to unmarshal error response %q: %v", resp.Body.String(), err)
	}
	return errResp.Error
}

type issuedClaims struct {
	Name  string `json:"name"`
	Video struct {
		Room           string `json:"room"`
		RoomJoin       bool   `json:"roomJoin"`
		CanPublish     *bool  `json:"canPublish"`
		CanSubscribe   *bool  `json:"canSubscribe"`
		CanPublishData *bool  `json:"canPublishData"`
	} `json:"video"`
	jwt.RegisteredClaims
}

// verifyToken checks the signature with the test secret and returns the claims.
func verifyToken(t *testing.T, raw string) *issuedClaims {
	t.Helper()

	claims := &issuedClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testAPISecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	return claims
}
