package store

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

const (
	sealedSnapshotVersion = 1

	// Upper bounds accepted from a file, so a tampered header cannot make
	// key derivation allocate gigabytes before authentication fails.
	maxScryptN = 1 << 20
	maxScryptR = 32
	maxScryptP = 16
)

// snapshotAAD binds the ciphertext to this file kind and layout version.
var snapshotAAD = []byte("quickchat/storedMessages/v1")

// ErrWrongPassphrase is returned when a sealed snapshot cannot be opened,
// either because the passphrase differs or the file was modified.
var ErrWrongPassphrase = errors.New("wrong passphrase or corrupted message snapshot")

type kdfParams struct {
	N int `json:"n"`
	R int `json:"r"`
	P int `json:"p"`
}

func defaultKDFParams() kdfParams { return kdfParams{N: 1 << 15, R: 8, P: 1} }

func (k kdfParams) check() error {
	if k.N < 2 || k.N > maxScryptN || k.R < 1 || k.R > maxScryptR || k.P < 1 || k.P > maxScryptP {
		return fmt.Errorf("sealed snapshot: scrypt parameters out of range (N=%d r=%d p=%d)", k.N, k.R, k.P)
	}
	return nil
}

// sealedSnapshot is what a sealed store writes instead of the plain array.
type sealedSnapshot struct {
	Version int       `json:"version"`
	KDF     kdfParams `json:"kdf"`
	Salt    []byte    `json:"salt"`
	Nonce   []byte    `json:"nonce"`
	Data    []byte    `json:"data"`
}

// snapshotSealer encrypts snapshots with XChaCha20-Poly1305 under a key
// derived from a passphrase. Every seal draws a fresh salt and nonce.
type snapshotSealer struct {
	passphrase string
	kdf        kdfParams
}

func newSnapshotSealer(passphrase string) *snapshotSealer {
	return &snapshotSealer{passphrase: passphrase, kdf: defaultKDFParams()}
}

func (s *snapshotSealer) seal(plain []byte) ([]byte, error) {
	out := sealedSnapshot{
		Version: sealedSnapshotVersion,
		KDF:     s.kdf,
		Salt:    make([]byte, 16),
		Nonce:   make([]byte, chacha20poly1305.NonceSizeX),
	}
	if _, err := rand.Read(out.Salt); err != nil {
		return nil, err
	}
	if _, err := rand.Read(out.Nonce); err != nil {
		return nil, err
	}
	aead, err := s.aead(out.Salt, out.KDF)
	if err != nil {
		return nil, err
	}
	out.Data = aead.Seal(nil, out.Nonce, plain, snapshotAAD)
	return json.MarshalIndent(out, "", "  ")
}

func (s *snapshotSealer) open(b []byte) ([]byte, error) {
	var in sealedSnapshot
	if err := json.Unmarshal(b, &in); err != nil {
		return nil, fmt.Errorf("sealed snapshot: %w", err)
	}
	if in.Version != sealedSnapshotVersion {
		return nil, fmt.Errorf("sealed snapshot: unsupported version %d", in.Version)
	}
	if err := in.KDF.check(); err != nil {
		return nil, err
	}
	if len(in.Nonce) != chacha20poly1305.NonceSizeX {
		return nil, ErrWrongPassphrase
	}
	aead, err := s.aead(in.Salt, in.KDF)
	if err != nil {
		return nil, err
	}
	plain, err := aead.Open(nil, in.Nonce, in.Data, snapshotAAD)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return plain, nil
}

// aead derives the key for salt. The AEAD keeps its own copy of the key.
func (s *snapshotSealer) aead(salt []byte, k kdfParams) (cipher.AEAD, error) {
	key, err := scrypt.Key([]byte(s.passphrase), salt, k.N, k.R, k.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer wipe(key)
	return chacha20poly1305.NewX(key)
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
