// Package identity maps external document references to stable internal
// identifiers. Everything here is pure: the same reference always yields the
// same canonical id and url hash, across processes and over time, which is
// what lets independently processed documents converge on one row without
// coordination.
package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// Namespace for canonical ids. Fixed forever; changing it would re-key every
// entity in the store.
var canonicalNamespace = uuid.MustParse("6f1cf42e-8a6d-5c59-9a4b-20d3a1b5c7e9")

// Identity is the derived identity of one external reference.
type Identity struct {
	CanonicalID uuid.UUID
	URLHash     string
	CleanURL    string
}

// volatileParams are provider query parameters that vary between fetches of
// the same logical document and must not influence identity.
var volatileParams = []string{"lang", "region"}

// Generate derives the canonical identity for an external reference URL.
func Generate(rawURL string) (Identity, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return Identity{}, fmt.Errorf("empty reference url")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return Identity{}, fmt.Errorf("parse reference url: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return Identity{}, fmt.Errorf("reference url is not absolute: %s", rawURL)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""

	q := u.Query()
	for _, p := range volatileParams {
		q.Del(p)
	}
	u.RawQuery = q.Encode() // Encode sorts keys, so param order never matters

	clean := u.String()
	if u.RawQuery == "" {
		clean = strings.TrimSuffix(clean, "?")
	}
	clean = strings.TrimSuffix(clean, "/")

	sum := sha256.Sum256([]byte(clean))

	return Identity{
		CanonicalID: uuid.NewSHA1(canonicalNamespace, []byte(clean)),
		URLHash:     hex.EncodeToString(sum[:]),
		CleanURL:    clean,
	}, nil
}

// Fingerprint normalizes a raw JSON document and hashes it. Re-fetched
// documents that differ only in key order or whitespace produce the same
// fingerprint, so processors can detect true no-op updates.
func Fingerprint(doc []byte) (string, error) {
	var v any
	if err := json.Unmarshal(doc, &v); err != nil {
		return "", fmt.Errorf("normalize document: %w", err)
	}
	norm, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("normalize document: %w", err)
	}
	sum := sha256.Sum256(norm)
	return hex.EncodeToString(sum[:]), nil
}
