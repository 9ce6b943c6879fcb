package google

import (
	"context"
	"fmt"
	"net/http"

	goauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// Profile is the subset of the userinfo record the dashboard keeps.
type Profile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"imageUrl"`
}

// FetchProfile looks up the authenticated user's profile through the
// userinfo endpoint, using client's token as the bearer credential.
func FetchProfile(ctx context.Context, client *http.Client) (*Profile, error) {
	svc, err := goauth2.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create userinfo service: %w", err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user profile: %w", err)
	}

	return toProfile(info), nil
}

// toProfile converts a userinfo record to a Profile, applying the display
// defaults for missing fields.
func toProfile(info *goauth2.Userinfo) *Profile {
	if info == nil {
		return &Profile{Name: "User", Email: "No email"}
	}

	p := &Profile{
		ID:       info.Id,
		Name:     info.Name,
		Email:    info.Email,
		ImageURL: info.Picture,
	}
	if p.Name == "" {
		p.Name = "User"
	}
	if p.Email == "" {
		p.Email = "No email"
	}
	return p
}
