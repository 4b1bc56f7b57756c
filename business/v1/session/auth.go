package session

import (
	"context"
	"github.com/google/uuid"
	"strings"
)

// Authenticator turns credentials into an Identity
type Authenticator interface {
	Login(ctx context.Context, email, password string) (Identity, error)
	Register(ctx context.Context, name, email, password string) (Identity, error)
}

// DemoAuthenticator accepts any password. It performs NO credential verification
// and must be replaced by a call to a real identity service before going to production.
type DemoAuthenticator struct{}

func (DemoAuthenticator) Login(_ context.Context, email, _ string) (Identity, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return Identity{}, ErrEmailRequired
	}
	name, _, _ := strings.Cut(email, "@")
	return Identity{ID: identityID(email), Name: name, Email: email}, nil
}

func (DemoAuthenticator) Register(_ context.Context, name, email, _ string) (Identity, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return Identity{}, ErrEmailRequired
	}
	return Identity{ID: identityID(email), Name: name, Email: email}, nil
}

// identityID is stable per email, so logging in again finds the same notes
func identityID(email string) string {
	return "user-" + uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+strings.ToLower(email))).String()
}
