// Package snapshot encodes merged page data for client round-trips.
//
// Payloads are msgpack-packed and HMAC-signed: visible to the client but
// tamper-proof. The wire form is base64(data) + "." + base64(hmac[:16]).
package snapshot

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	ErrInvalidFormat    = errors.New("snapshot: invalid format")
	ErrSignatureInvalid = errors.New("snapshot: signature verification failed")
)

// Encoder signs and encodes page data snapshots.
type Encoder struct {
	key []byte
}

// NewEncoder creates an encoder with the given signing key. Keys shorter
// than 32 bytes are stretched through SHA-256.
func NewEncoder(key []byte) *Encoder {
	if len(key) < 32 {
		h := sha256.Sum256(key)
		key = h[:]
	}
	return &Encoder{key: key}
}

// Encode packs and signs a data mapping.
func (e *Encoder) Encode(data map[string]any) (string, error) {
	packed, err := msgpack.Marshal(data)
	if err != nil {
		return "", err
	}
	b64 := base64.RawURLEncoding.EncodeToString(packed)
	mac := hmac.New(sha256.New, e.key)
	mac.Write(packed)
	sig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil)[:16])
	return b64 + "." + sig, nil
}

// Decode verifies and unpacks an encoded snapshot.
func (e *Encoder) Decode(encoded string) (map[string]any, error) {
	parts := strings.SplitN(encoded, ".", 2)
	if len(parts) != 2 {
		return nil, ErrInvalidFormat
	}

	packed, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, ErrInvalidFormat
	}
	sig, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, ErrInvalidFormat
	}

	mac := hmac.New(sha256.New, e.key)
	mac.Write(packed)
	expected := mac.Sum(nil)[:16]
	if !hmac.Equal(sig, expected) {
		return nil, ErrSignatureInvalid
	}

	var data map[string]any
	if err := msgpack.Unmarshal(packed, &data); err != nil {
		return nil, ErrInvalidFormat
	}
	return data, nil
}
