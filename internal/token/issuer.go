package token

import (
	"context"
	"fmt"
)

// Issuer mints access tokens for one room/identity pair per call.
// It holds no per-request state and is safe for concurrent use.
type Issuer struct {
	creds  Credentials
	signer Signer
}

// NewIssuer creates an Issuer. Credentials may be empty; Issue then fails
// with ErrCredentialsNotConfigured instead of signing.
func NewIssuer(creds Credentials, signer Signer) *Issuer {
	return &Issuer{
		creds:  creds,
		signer: signer,
	}
}

// Configured reports whether the issuer can sign tokens.
func (i *Issuer) Configured() bool {
	return i.creds.Configured()
}

// Issue validates the request and returns a signed token.
func (i *Issuer) Issue(ctx context.Context, req Request) (string, error) {
	if !i.creds.Configured() {
		return "", ErrCredentialsNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := req.Validate(); err != nil {
		return "", err
	}

	tok, err := i.signer.Sign(i.creds.APIKey, i.creds.APISecret, req.UserID, req.Username, FixedGrant(req.Room))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return tok, nil
}

// Validate checks the fields LiveKit needs to admit a participant.
// Username is optional and becomes an empty display name.
func (r Request) Validate() error {
	if r.Room == "" {
		return fmt.Errorf("%w: room is required", ErrInvalidRequest)
	}
	if r.UserID == "" {
		return fmt.Errorf("%w: userId is required", ErrInvalidRequest)
	}
	return nil
}
