// Package session manages the dashboard's authentication lifecycle.
//
// A session is created on successful authentication, restored from the
// local store on startup while the persisted token is unexpired, and
// destroyed on sign-out or when any remote call reports an authorization
// failure.
package session
