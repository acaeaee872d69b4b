// Package cipher implements the password-based envelope used for encrypted
// files.
//
// Envelope layout:
//
//	magic "RCRY" | version | logN | r | p | salt (16) | nonce (24) | ciphertext+tag
//
// The key is derived with scrypt using the parameters stored in the header and
// the payload is sealed with XChaCha20-Poly1305. The header is authenticated as
// additional data, so any change to it fails decryption.
package cipher
