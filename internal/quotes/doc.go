// Package quotes fetches random inspirational quotes.
//
// The feature is stateless: a single GET against the api-ninjas quotes
// endpoint, displaying the first quote of the returned array.
package quotes
