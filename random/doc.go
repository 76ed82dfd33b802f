// Package random generates random strings and dash-less UUIDs.
//
// Randomness comes from a Source: a ChaCha20 keystream keyed from crypto/rand
// and re-keyed periodically. A Source and the Generators built on it are safe
// for concurrent use without external locking.
//
// # Configuration
//
//	random:
//	  length: 12
//	  alphabet: "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
//
// # Usage
//
//	token := random.String()    // 12 characters from A-Z, a-z, 0-9
//	code, err := random.StringN(6)
//	id := random.UUID()         // 32 hex characters
package random
