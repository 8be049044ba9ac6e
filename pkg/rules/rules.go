/*
Copyright © 2025 the pictverify authors
SPDX-License-Identifier: Apache-2.0
*/

// Package rules implements the constraint validator for Product entities.
//
// # Overview
//
// Constraints are an explicit, enumerable table of named predicates, one
// per rule, evaluated directly: no annotations, reflection, or metadata
// interpretation. Validation evaluates every rule independently (no
// short-circuit on first violation) and returns the full violation set;
// an empty set means the entity is valid.
//
// # Rules
//
// Per-field rules follow the Product data model: title is required,
// non-empty and bounded; keywords, description, and dimensions are
// optional but bounded; rating, when present, must be >= 1; price and
// quantityInStock are required and must be >= 0; weight, when present,
// must be >= 0. The single cross-field rule requires dateModified >=
// dateAdded, evaluated only when both timestamps are present.
//
// Price comparisons use arbitrary-precision decimals; they are never
// routed through float64.
package rules

import (
	"fmt"

	"github.com/pictverify/pictverify/pkg/product"
)

// Bounded-length limits for the free-text fields.
const (
	MaxTitleLen       = 100
	MaxKeywordsLen    = 200
	MaxDescriptionLen = 1000
	MaxDimensionsLen  = 50
)

// Violation identifies one violated rule on one field.
type Violation struct {
	Field   string `json:"field" yaml:"field"`
	Rule    string `json:"rule" yaml:"rule"`
	Message string `json:"message" yaml:"message"`
}

// String returns the violation in "field.rule: message" form.
func (v Violation) String() string {
	return fmt.Sprintf("%s.%s: %s", v.Field, v.Rule, v.Message)
}

// Rule is a named predicate over a Product. Satisfied returns true when
// the rule holds; rules over absent optional fields hold vacuously.
type Rule struct {
	Field     string
	Name      string
	Message   string
	Satisfied func(p *product.Product) bool
}

// table is the immutable rule set. It is shared read-only across rows and
// goroutines.
var table = []Rule{
	{
		Field:   "title",
		Name:    "required",
		Message: "title must be present and non-empty",
		Satisfied: func(p *product.Product) bool {
			return p.Title != nil && *p.Title != ""
		},
	},
	{
		Field:   "title",
		Name:    "maxLength",
		Message: fmt.Sprintf("title must be at most %d characters", MaxTitleLen),
		Satisfied: func(p *product.Product) bool {
			return p.Title == nil || len(*p.Title) <= MaxTitleLen
		},
	},
	{
		Field:   "keywords",
		Name:    "maxLength",
		Message: fmt.Sprintf("keywords must be at most %d characters", MaxKeywordsLen),
		Satisfied: func(p *product.Product) bool {
			return p.Keywords == nil || len(*p.Keywords) <= MaxKeywordsLen
		},
	},
	{
		Field:   "description",
		Name:    "maxLength",
		Message: fmt.Sprintf("description must be at most %d characters", MaxDescriptionLen),
		Satisfied: func(p *product.Product) bool {
			return p.Description == nil || len(*p.Description) <= MaxDescriptionLen
		},
	},
	{
		Field:   "rating",
		Name:    "min",
		Message: "rating must be at least 1 when present",
		Satisfied: func(p *product.Product) bool {
			return p.Rating == nil || *p.Rating >= 1
		},
	},
	{
		Field:   "price",
		Name:    "required",
		Message: "price must be present",
		Satisfied: func(p *product.Product) bool {
			return p.Price != nil
		},
	},
	{
		Field:   "price",
		Name:    "min",
		Message: "price must not be negative",
		Satisfied: func(p *product.Product) bool {
			return p.Price == nil || p.Price.Sign() >= 0
		},
	},
	{
		Field:   "quantity",
		Name:    "required",
		Message: "quantityInStock must be present",
		Satisfied: func(p *product.Product) bool {
			return p.QuantityInStock != nil
		},
	},
	{
		Field:   "quantity",
		Name:    "min",
		Message: "quantityInStock must not be negative",
		Satisfied: func(p *product.Product) bool {
			return p.QuantityInStock == nil || *p.QuantityInStock >= 0
		},
	},
	{
		Field:   "status",
		Name:    "member",
		Message: "status must be a known member when present",
		Satisfied: func(p *product.Product) bool {
			return p.Status == nil || p.Status.IsValid()
		},
	},
	{
		Field:   "weight",
		Name:    "min",
		Message: "weight must not be negative when present",
		Satisfied: func(p *product.Product) bool {
			return p.Weight == nil || *p.Weight >= 0
		},
	},
	{
		Field:   "dimensions",
		Name:    "maxLength",
		Message: fmt.Sprintf("dimensions must be at most %d characters", MaxDimensionsLen),
		Satisfied: func(p *product.Product) bool {
			return p.Dimensions == nil || len(*p.Dimensions) <= MaxDimensionsLen
		},
	},
	{
		Field:   "dateModified",
		Name:    "notBeforeDateAdded",
		Message: "dateModified must not precede dateAdded",
		Satisfied: func(p *product.Product) bool {
			if p.DateAdded == nil || p.DateModified == nil {
				return true
			}
			return !p.DateModified.Before(*p.DateAdded)
		},
	},
}

// All returns a copy of the rule table.
func All() []Rule {
	out := make([]Rule, len(table))
	copy(out, table)
	return out
}

// Validate evaluates every rule against p and returns the violations.
// It is pure: validating the same Product twice yields the same set.
func Validate(p *product.Product) []Violation {
	var violations []Violation
	for _, r := range table {
		if !r.Satisfied(p) {
			violations = append(violations, Violation{
				Field:   r.Field,
				Rule:    r.Name,
				Message: r.Message,
			})
		}
	}
	return violations
}

// Targets reports whether any rule in the table is declared for field.
func Targets(field string) bool {
	for _, r := range table {
		if r.Field == field {
			return true
		}
	}
	return false
}
