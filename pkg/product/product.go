/*
Copyright © 2025 the pictverify authors
SPDX-License-Identifier: Apache-2.0
*/

// Package product defines the Product entity under test and its builder.
//
// All constrained fields are pointers: nil means the field is absent, which
// is a distinct state from present-but-zero. Building a Product is pure and
// performs no validation; the rules package evaluates constraints.
package product

import (
	"time"

	"github.com/shopspring/decimal"
)

// syntheticID is the placeholder identity assigned to every built Product.
// Identity is irrelevant to validation; any stable value works.
const syntheticID int64 = 1

// Product is the entity validated by the harness.
type Product struct {
	ID              int64
	Title           *string
	Keywords        *string
	Description     *string
	Rating          *int
	Price           *decimal.Decimal
	QuantityInStock *int
	Status          *Status
	Weight          *float64
	Dimensions      *string
	DateAdded       *time.Time
	DateModified    *time.Time
}

// Fields holds the parsed (and possibly sentinel-substituted) values for
// one matrix row, in entity terms rather than raw tokens.
type Fields struct {
	Title           *string
	Keywords        *string
	Description     *string
	Rating          *int
	Price           *decimal.Decimal
	QuantityInStock *int
	Status          *Status
	Weight          *float64
	Dimensions      *string
	DateAdded       *time.Time
	DateModified    *time.Time
}

// Build assembles a Product from parsed field values. It is a pure
// function with no side effects or external lookups.
func Build(f Fields) *Product {
	return &Product{
		ID:              syntheticID,
		Title:           f.Title,
		Keywords:        f.Keywords,
		Description:     f.Description,
		Rating:          f.Rating,
		Price:           f.Price,
		QuantityInStock: f.QuantityInStock,
		Status:          f.Status,
		Weight:          f.Weight,
		Dimensions:      f.Dimensions,
		DateAdded:       f.DateAdded,
		DateModified:    f.DateModified,
	}
}
