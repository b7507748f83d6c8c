// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/scrypt"
)

// keybagService is the private implementation of [KeybagService].
type keybagService struct {
	// scrypt tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target.
	scryptN      int
	scryptR      int
	scryptP      int
	scryptKeyLen int
}

// NewKeybagService constructs a [KeybagService] with scrypt parameters
// compatible with the keybag derivation used by the sync wire protocol:
//   - cost factor N: 8192
//   - block size r:  8
//   - parallelism p: 11
//   - key length:    32 bytes (256 bits)
func NewKeybagService() KeybagService {
	return &keybagService{
		scryptN:      8192,
		scryptR:      8,
		scryptP:      11,
		scryptKeyLen: 32,
	}
}

// GenerateScryptSalt implements [KeybagService]. It reads 32 random bytes
// from the OS CSPRNG and returns them as the derivation salt. Returns an
// error if the random read fails.
func (k *keybagService) GenerateScryptSalt() ([]byte, error) {
	salt := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveKey implements [KeybagService]. It derives a 256-bit sealing key
// from the bootstrap token and salt using scrypt with the parameters stored
// in the receiver.
func (k *keybagService) DeriveKey(bootstrapToken string, salt []byte) ([]byte, error) {
	key, err := scrypt.Key(
		[]byte(bootstrapToken),
		salt,
		k.scryptN,
		k.scryptR,
		k.scryptP,
		k.scryptKeyLen,
	)
	if err != nil {
		return nil, fmt.Errorf("derive keybag key: %w", err)
	}
	return key, nil
}

// Seal implements [KeybagService]. It marshals data to JSON, then encrypts
// it with key using AES-256-GCM. The output is a Base64 (standard encoding)
// string of the blob: nonce (12 bytes) ‖ ciphertext.
func (k *keybagService) Seal(data any, key []byte) (string, error) {
	plaintext, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("marshal keybag: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create gcm: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// Prepend the nonce so Open can split it out.
	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	blob := append(nonce, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [KeybagService]. It Base64-decodes sealedB64, splits out
// the nonce, decrypts the ciphertext with key via AES-256-GCM, and
// unmarshals the resulting JSON into target. Returns an error if any step
// (decoding, cipher creation, decryption, or unmarshalling) fails; an
// authentication failure almost always means a wrong bootstrap token or a
// corrupted on-disk blob.
func (k *keybagService) Open(sealedB64 string, key []byte, target any) error {
	blob, err := base64.StdEncoding.DecodeString(sealedB64)
	if err != nil {
		return fmt.Errorf("decode base64: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return fmt.Errorf("create gcm: %w", err)
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return fmt.Errorf("open keybag: %w", err)
	}

	if err := json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("unmarshal keybag: %w", err)
	}

	return nil
}
