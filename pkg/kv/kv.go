// Package kv defines the error contract shared by the persisted
// key-value backends. The concrete backends live in the subpackages
// memory, fs and firestore; black-box conformance tests for all of
// them live in this package.
package kv

import "errors"

// ErrKeyNotFound is returned by Backend.Get when no blob is stored
// under the requested key.
var ErrKeyNotFound = errors.New("key not found")
