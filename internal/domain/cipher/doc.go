// Package cipher defines the contract for the blockwise RSA file cipher:
// streaming encryption and decryption of byte streams plus the injected
// progress observer fed with byte-count deltas.
package cipher
