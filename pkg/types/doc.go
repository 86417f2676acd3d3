// Package types defines the application record model, the storage backend
// contract, patch and filter types, and the standard errors shared by every
// layer of jobdeck.
package types
