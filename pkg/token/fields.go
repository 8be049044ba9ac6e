/*
Copyright © 2025 the pictverify authors
SPDX-License-Identifier: Apache-2.0
*/

package token

import (
	"github.com/pictverify/pictverify/pkg/product"
)

// ColumnCount is the fixed number of columns in a matrix row.
const ColumnCount = 11

// Column names in fixed matrix order.
var Columns = []string{
	"title", "keywords", "description", "rating", "price", "quantity",
	"status", "weight", "dimensions", "dateAdded", "dateModified",
}

// Fields converts one row of raw cell tokens into typed entity field
// values, applying the sentinel policy. cells must have exactly
// ColumnCount entries, in fixed column order.
func Fields(cells []string) product.Fields {
	dateAdded := Instant(cells[9])

	return product.Fields{
		Title:           Text(cells[0]),
		Keywords:        Text(cells[1]),
		Description:     Text(cells[2]),
		Rating:          RatingOrSentinel(cells[3]),
		Price:           Decimal(cells[4]),
		QuantityInStock: Int(cells[5]),
		Status:          Status(cells[6]),
		Weight:          WeightOrSentinel(cells[7]),
		Dimensions:      Text(cells[8]),
		DateAdded:       dateAdded,
		DateModified:    ModifiedOrSentinel(cells[10], dateAdded),
	}
}
