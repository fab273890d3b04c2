// Package keys defines the RSA key pair domain model: capability-typed
// public and private keys, the key pair validity check, key pair metadata
// and the contracts for generating, storing and persisting key pairs.
package keys
