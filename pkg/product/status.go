/*
Copyright © 2025 the pictverify authors
SPDX-License-Identifier: Apache-2.0
*/

package product

// Status is the product lifecycle state enumeration.
type Status string

// Known status members. Matching is case-sensitive and exact.
const (
	StatusActive       Status = "ACTIVE"
	StatusInactive     Status = "INACTIVE"
	StatusDiscontinued Status = "DISCONTINUED"
	StatusOutOfStock   Status = "OUT_OF_STOCK"
)

// IsValid reports whether s is a known status member.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusDiscontinued, StatusOutOfStock:
		return true
	}
	return false
}

// String returns the status member name.
func (s Status) String() string {
	return string(s)
}

// SupportedStatuses returns all known status members.
func SupportedStatuses() []Status {
	return []Status{StatusActive, StatusInactive, StatusDiscontinued, StatusOutOfStock}
}

// ParseStatus matches raw against the member set. The second return value
// reports whether raw named a known member.
func ParseStatus(raw string) (Status, bool) {
	s := Status(raw)
	return s, s.IsValid()
}
