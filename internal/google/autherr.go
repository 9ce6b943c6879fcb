package google

import (
	"errors"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
)

// IsAuthError reports whether err is an authorization failure: HTTP
// 401/403 from a Google API, a provider status of UNAUTHENTICATED or
// PERMISSION_DENIED, or a failed token refresh. Callers recover from
// these by clearing the session and prompting for a fresh sign-in,
// never by retrying.
func IsAuthError(err error) bool {
	if err == nil {
		return false
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		if gerr.Code == http.StatusUnauthorized || gerr.Code == http.StatusForbidden {
			return true
		}
		for _, e := range gerr.Errors {
			if e.Reason == "authError" || e.Reason == "forbidden" || e.Reason == "insufficientPermissions" {
				return true
			}
		}
	}

	var rerr *oauth2.RetrieveError
	if errors.As(err, &rerr) {
		return true
	}

	msg := err.Error()
	return strings.Contains(msg, "UNAUTHENTICATED") || strings.Contains(msg, "PERMISSION_DENIED")
}

// ErrorMessage extracts a human-readable message from a remote error,
// preferring the message the API returned, falling back to the error text,
// falling back to "Unknown error".
func ErrorMessage(err error) string {
	if err == nil {
		return "Unknown error"
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Message != "" {
		return gerr.Message
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return "Unknown error"
}
