package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keybag_service_mock.go -package=mock

// KeybagService guards the encryption metadata (keybag) the engine keeps on
// disk. It knows nothing about the network or the sync protocol; its only
// job is deriving keys and sealing/opening the local keybag blob.
//
// Flow:
//
//	salt = GenerateScryptSalt()
//	key  = DeriveKey(bootstrapToken, salt)
//	blob = Seal(keybag, key)        — persisted to disk
//	Open(blob, key, &keybag)        — on next startup
type KeybagService interface {
	// GenerateScryptSalt generates a random salt (32 bytes / 256 bits).
	// The salt is not a secret and is stored alongside the sealed blob.
	GenerateScryptSalt() ([]byte, error)

	// DeriveKey derives a 256-bit sealing key from the bootstrap token and
	// salt via scrypt. The key exists only in memory.
	DeriveKey(bootstrapToken string, salt []byte) ([]byte, error)

	// Seal serializes the given value to JSON and encrypts it with the key.
	// Returns a base64-encoded blob (nonce || ciphertext) safe to store on
	// disk.
	Seal(data any, key []byte) (string, error)

	// Open decrypts a base64-encoded blob with the key and unmarshals the
	// plaintext JSON into target. target must be a non-nil pointer.
	// Returns an error on authentication-tag mismatch (wrong token or
	// corrupted blob).
	Open(sealedB64 string, key []byte, target any) error
}
