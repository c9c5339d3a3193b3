package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"hash"
)

// Codec lists the cursor methods the handlers rely on.
// Implementations must be safe for concurrent use.
type Codec interface {
	EncodeSearchCursor(offset int64, digest uint64) string
	DecodeSearchCursor(token string) (int64, uint64, error)

	EncodeListCursor(offset int64) string
	DecodeListCursor(token string) (int64, error)
}

// HMAC implements Codec using HMAC-SHA256 for integrity.
// It encodes payloads as base64 URL without padding.
type HMAC struct {
	key []byte
	h   func() hash.Hash
}

// NewHMAC creates an HMAC signer with the provided secret key.
func NewHMAC(key []byte) *HMAC {
	return &HMAC{key: append([]byte(nil), key...), h: sha256.New}
}

// seal signs the payload and returns a base64url token payload||sig.
func (c *HMAC) seal(payload []byte) string {
	mac := hmac.New(c.h, c.key)
	mac.Write(payload)
	sig := mac.Sum(nil)
	buf := append(payload, sig...)
	return base64.RawURLEncoding.EncodeToString(buf)
}

// open verifies the token and returns the payload bytes.
func (c *HMAC) open(token string, minPayloadLen int) ([]byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, err
	}
	if len(raw) < minPayloadLen+32 {
		return nil, errors.New("invalid_cursor_length")
	}
	payload := raw[:len(raw)-32]
	sig := raw[len(raw)-32:]
	mac := hmac.New(c.h, c.key)
	mac.Write(payload)
	expected := mac.Sum(nil)
	if !hmac.Equal(sig, expected) {
		return nil, errors.New("invalid_cursor_signature")
	}
	return payload, nil
}

// Search cursor: offset(int64) + params digest(uint64). The digest pins the
// cursor to the query/filter/sort combination it was issued for.
func (c *HMAC) EncodeSearchCursor(offset int64, digest uint64) string {
	payload := make([]byte, 16)
	binary.BigEndian.PutUint64(payload[0:8], uint64(offset))
	binary.BigEndian.PutUint64(payload[8:16], digest)
	return c.seal(payload)
}

func (c *HMAC) DecodeSearchCursor(token string) (int64, uint64, error) {
	payload, err := c.open(token, 16)
	if err != nil {
		return 0, 0, err
	}
	offset := int64(binary.BigEndian.Uint64(payload[0:8]))
	digest := binary.BigEndian.Uint64(payload[8:16])
	return offset, digest, nil
}

// List cursor: offset(int64). Used by the recent-movies panel.
func (c *HMAC) EncodeListCursor(offset int64) string {
	payload := make([]byte, 8)
	binary.BigEndian.PutUint64(payload, uint64(offset))
	return c.seal(payload)
}

func (c *HMAC) DecodeListCursor(token string) (int64, error) {
	payload, err := c.open(token, 8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(payload)), nil
}
