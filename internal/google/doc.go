// Package google provides shared Google OAuth2 authentication for the
// Calendar and Tasks clients.
//
// The consent flow is one-shot: AuthURL produces the URL the user visits,
// and Exchange trades the pasted authorization code for a token. The
// package also fetches the user's profile from the userinfo endpoint and
// classifies authorization errors so every remote-calling component can
// recover from an expired session the same way.
package google
