// Package store provides the local key-value persistence used for the
// auth token, its expiry, the user profile and the in-progress task
// overlay.
//
// Records live as individual files under the application's config
// directory. Callers that need atomicity across records must coordinate
// manually; none currently do.
package store
