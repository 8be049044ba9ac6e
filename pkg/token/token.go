/*
Copyright © 2025 the pictverify authors
SPDX-License-Identifier: Apache-2.0
*/

// Package token converts raw matrix-cell text into typed field values.
//
// # Overview
//
// Combinatorial generators emit plain text tokens, including deliberately
// malformed ones. Parsing here never fails the run: a malformed token
// degrades to absent (nil), or, for the three sentinel fields, to a value
// deliberately out of range so the targeted constraint still fires.
//
// # Cleaning
//
// Every token is trimmed, trailing semicolons are stripped repeatedly
// (generators sometimes append ";"), the exact token "null" means absent,
// and the exact two-character token `""` means present-but-empty.
//
// # Sentinels
//
// rating, weight, and dateModified are optional fields whose absent state
// is valid. A malformed token for them would silently degrade to a valid
// entity and defeat the generated invalid matrix, so instead:
//
//	rating       "abc"        -> -1            (violates rating >= 1)
//	weight       "abc"        -> -1.0          (violates weight >= 0)
//	dateModified "not-a-date" -> dateAdded-1s  (violates ordering)
//
// The dateModified sentinel falls back to the Unix epoch when dateAdded is
// itself absent. Sentinel substitution is deterministic.
package token

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/shopspring/decimal"

	"github.com/pictverify/pictverify/pkg/product"
)

const (
	nullToken        = "null"
	emptyQuotesToken = `""`
)

// Clean normalizes a raw cell token. The second return value reports
// whether a value is present: false means the token was empty or the
// literal "null". The two-character token `""` is present with an empty
// string value.
func Clean(raw string) (string, bool) {
	t := strings.TrimSpace(raw)
	for strings.HasSuffix(t, ";") {
		t = strings.TrimSpace(strings.TrimSuffix(t, ";"))
	}
	switch t {
	case "", nullToken:
		return "", false
	case emptyQuotesToken:
		return "", true
	}
	return t, true
}

// Text returns the cleaned token as a string pointer, nil when absent.
func Text(raw string) *string {
	t, ok := Clean(raw)
	if !ok {
		return nil
	}
	return &t
}

// Int parses a whole number, nil when absent or malformed.
func Int(raw string) *int {
	t, ok := Clean(raw)
	if !ok || t == "" {
		return nil
	}
	n, err := strconv.Atoi(t)
	if err != nil {
		return nil
	}
	return &n
}

// Decimal parses an arbitrary-precision decimal, nil when absent or
// malformed. Decimal values must never round-trip through float64.
func Decimal(raw string) *decimal.Decimal {
	t, ok := Clean(raw)
	if !ok || t == "" {
		return nil
	}
	d, err := decimal.NewFromString(t)
	if err != nil {
		return nil
	}
	return &d
}

// Float parses an IEEE double, nil when absent or malformed.
func Float(raw string) *float64 {
	t, ok := Clean(raw)
	if !ok || t == "" {
		return nil
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return nil
	}
	return &f
}

// Instant parses a strict ISO-8601 instant (RFC 3339), nil when absent or
// malformed.
func Instant(raw string) *time.Time {
	t, ok := Clean(raw)
	if !ok || t == "" {
		return nil
	}
	ts, err := time.Parse(time.RFC3339, t)
	if err != nil {
		return nil
	}
	return &ts
}

// FormatInstant renders ts in the same textual form Instant accepts, so
// that parse-then-format round-trips.
func FormatInstant(ts time.Time) string {
	return ts.UTC().Format(time.RFC3339Nano)
}

// Status matches the token against the known member set, nil when absent
// or unknown. Matching is case-sensitive and exact; a near-miss logs the
// closest known member to help diagnose fixture typos.
func Status(raw string) *product.Status {
	t, ok := Clean(raw)
	if !ok || t == "" {
		return nil
	}
	s, valid := product.ParseStatus(t)
	if !valid {
		slog.Debug("unknown status token",
			"token", t,
			"closest", closestStatus(t),
			"supported", product.SupportedStatuses())
		return nil
	}
	return &s
}

// closestStatus returns the known member with the smallest edit distance
// to the token.
func closestStatus(tok string) product.Status {
	var (
		best     product.Status
		bestDist = -1
	)
	for _, s := range product.SupportedStatuses() {
		d := levenshtein.ComputeDistance(tok, s.String())
		if bestDist < 0 || d < bestDist {
			best, bestDist = s, d
		}
	}
	return best
}
