package google

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Scopes is the fixed scope set the dashboard requests: read/write access
// to Calendar and Tasks plus the identity scopes needed for the profile
// lookup.
var Scopes = []string{
	"openid",
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/userinfo.profile",
	"https://www.googleapis.com/auth/calendar",
	"https://www.googleapis.com/auth/tasks",
}

// GetOAuthConfig returns the OAuth2 configuration for all Google services
func GetOAuthConfig() *oauth2.Config {
	const OOB = "urn:ietf:wg:oauth:2.0:oob"
	return &oauth2.Config{
		ClientID:     "238459408958-ug5nb6iam75o9pbemkca73iimlss78vf.apps.googleusercontent.com",
		ClientSecret: "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",
		Endpoint:     google.Endpoint,
		RedirectURL:  OOB,
		Scopes:       Scopes,
	}
}

// AuthURL returns the consent URL the user must visit to authorize the
// dashboard. The resulting authorization code is pasted back into the
// application.
func AuthURL() string {
	return GetOAuthConfig().AuthCodeURL("state", oauth2.AccessTypeOffline)
}

// Exchange trades an authorization code for a token.
func Exchange(ctx context.Context, authCode string) (*oauth2.Token, error) {
	t, err := GetOAuthConfig().Exchange(ctx, authCode)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange auth code: %w", err)
	}
	return t, nil
}

// HTTPClient returns an HTTP client that authenticates requests with the
// given token, refreshing it when possible.
// The client is configured to use HTTP/1.1 to avoid HTTP/2 protocol errors.
func HTTPClient(ctx context.Context, token *oauth2.Token) *http.Client {
	conf := GetOAuthConfig()
	client := oauth2.NewClient(ctx, conf.TokenSource(ctx, token))

	// Force HTTP/1.1 by disabling HTTP/2
	transport := client.Transport.(*oauth2.Transport)
	transport.Base = &http.Transport{
		ForceAttemptHTTP2: false,
	}

	return client
}
