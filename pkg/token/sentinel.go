/*
Copyright © 2025 the pictverify authors
SPDX-License-Identifier: Apache-2.0
*/

package token

import (
	"strconv"
	"time"
)

// Sentinel values substituted for malformed tokens on the three fields
// whose absent state would otherwise be valid.
const (
	// RatingSentinel violates the rating >= 1 rule.
	RatingSentinel = -1

	// WeightSentinel violates the weight >= 0 rule.
	WeightSentinel = -1.0
)

// RatingOrSentinel parses a rating token. Absent stays nil; a non-empty
// token that fails integer parse becomes RatingSentinel.
func RatingOrSentinel(raw string) *int {
	t, ok := Clean(raw)
	if !ok || t == "" {
		return nil
	}
	n, err := strconv.Atoi(t)
	if err != nil {
		n = RatingSentinel
	}
	return &n
}

// WeightOrSentinel parses a weight token. Absent stays nil; a non-empty
// token that fails numeric parse becomes WeightSentinel.
func WeightOrSentinel(raw string) *float64 {
	t, ok := Clean(raw)
	if !ok || t == "" {
		return nil
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		f = WeightSentinel
	}
	return &f
}

// ModifiedOrSentinel parses a dateModified token. Absent stays nil; a
// non-empty token that fails instant parse becomes a value guaranteed to
// precede dateAdded: dateAdded minus one second when dateAdded is present,
// the Unix epoch otherwise.
func ModifiedOrSentinel(raw string, dateAdded *time.Time) *time.Time {
	t, ok := Clean(raw)
	if !ok || t == "" {
		return nil
	}
	ts, err := time.Parse(time.RFC3339, t)
	if err != nil {
		if dateAdded != nil {
			ts = dateAdded.Add(-time.Second)
		} else {
			ts = time.Unix(0, 0).UTC()
		}
	}
	return &ts
}
