/*
Copyright © 2025 the pictverify authors
SPDX-License-Identifier: Apache-2.0
*/

package token

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pictverify/pictverify/pkg/product"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{name: "plain token", raw: "Widget", want: "Widget", wantOK: true},
		{name: "surrounding whitespace", raw: "  Widget  ", want: "Widget", wantOK: true},
		{name: "trailing semicolon", raw: "Widget;", want: "Widget", wantOK: true},
		{name: "repeated semicolons with spaces", raw: "Widget ; ; ", want: "Widget", wantOK: true},
		{name: "empty", raw: "", wantOK: false},
		{name: "whitespace only", raw: "   ", wantOK: false},
		{name: "null literal", raw: "null", wantOK: false},
		{name: "null with semicolon", raw: "null;", wantOK: false},
		{name: "null is case-sensitive", raw: "NULL", want: "NULL", wantOK: true},
		{name: "empty quotes token", raw: `""`, want: "", wantOK: true},
		{name: "semicolons only", raw: ";;", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Clean(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		raw  string
		want *int
	}{
		{raw: "5", want: intPtr(5)},
		{raw: "-3", want: intPtr(-3)},
		{raw: " 7 ;", want: intPtr(7)},
		{raw: "null", want: nil},
		{raw: "", want: nil},
		{raw: "abc", want: nil},
		{raw: "1.5", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, Int(tt.raw))
		})
	}
}

func TestDecimal(t *testing.T) {
	d := Decimal("9.99")
	require.NotNil(t, d)
	assert.True(t, d.Equal(decimal.RequireFromString("9.99")))

	// Round-trip: parse-then-format reproduces an equivalent value.
	again := Decimal(d.String())
	require.NotNil(t, again)
	assert.True(t, d.Equal(*again))

	assert.Nil(t, Decimal("not-a-number"))
	assert.Nil(t, Decimal("null"))
	assert.Nil(t, Decimal(""))
}

func TestFloat(t *testing.T) {
	f := Float("1.2")
	require.NotNil(t, f)
	assert.InDelta(t, 1.2, *f, 1e-12)

	assert.Nil(t, Float("abc"))
	assert.Nil(t, Float("null"))
}

func TestInstant(t *testing.T) {
	ts := Instant("2024-01-01T00:00:00Z")
	require.NotNil(t, ts)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), ts.UTC())

	// Round-trip through FormatInstant.
	again := Instant(FormatInstant(*ts))
	require.NotNil(t, again)
	assert.True(t, ts.Equal(*again))

	assert.Nil(t, Instant("not-a-date"))
	assert.Nil(t, Instant("2024-01-01")) // date only, not an instant
	assert.Nil(t, Instant("null"))
}

func TestStatus(t *testing.T) {
	s := Status("ACTIVE")
	require.NotNil(t, s)
	assert.Equal(t, product.StatusActive, *s)

	// Membership is case-sensitive exact match.
	assert.Nil(t, Status("active"))
	assert.Nil(t, Status("ACTIV"))
	assert.Nil(t, Status("null"))
	assert.Nil(t, Status(""))
}

func TestClosestStatus(t *testing.T) {
	assert.Equal(t, product.StatusActive, closestStatus("ACTIV"))
	assert.Equal(t, product.StatusInactive, closestStatus("INACTIV"))
	assert.Equal(t, product.StatusOutOfStock, closestStatus("OUT_OF_STOK"))
}

func intPtr(n int) *int { return &n }
