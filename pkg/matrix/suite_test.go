/*
Copyright © 2025 the pictverify authors
SPDX-License-Identifier: Apache-2.0
*/

package matrix

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	harnesserrors "github.com/pictverify/pictverify/pkg/errors"
)

func TestSuiteFromPaths(t *testing.T) {
	suite, err := SuiteFromPaths([]string{
		"pict/valid_test_cases.csv",
		"pict/invalid_title_cases.csv",
		"pict/invalid_dateModified_cases.csv",
		"pict/invalid_dateAdded_cases.csv",
	})
	require.NoError(t, err)
	require.Len(t, suite.Files, 4)

	assert.Equal(t, ExpectPass, suite.Files[0].Expect)
	assert.Equal(t, "valid", suite.Files[0].Category)

	assert.Equal(t, ExpectFail, suite.Files[1].Expect)
	assert.Equal(t, "title", suite.Files[1].Field)
	assert.Equal(t, "title", suite.Files[1].Category)

	assert.Equal(t, "dateModified", suite.Files[2].Field)

	// dateAdded well-formedness is absorbed by the parser, but it is
	// still a legitimate matrix target.
	assert.Equal(t, "dateAdded", suite.Files[3].Field)
}

func TestSuiteFromPathsErrors(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
	}{
		{name: "no paths", paths: nil},
		{name: "underivable name", paths: []string{"pict/cases.csv"}},
		{name: "unknown field", paths: []string{"pict/invalid_bogus_cases.csv"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SuiteFromPaths(tt.paths)
			require.Error(t, err)
			assert.True(t, harnesserrors.HasCode(err, harnesserrors.ErrCodeInvalidInput))
		})
	}
}

func TestSuiteFromFile(t *testing.T) {
	dir := t.TempDir()
	manifest := `kind: matrixSuite
apiVersion: pictverify.io/v1alpha1
metadata:
  name: product-suite
spec:
  matrices:
    - path: pict/valid_test_cases.csv
      expect: pass
    - path: pict/invalid_title_cases.csv
      expect: fail
      field: title
`
	path := filepath.Join(dir, "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0o644))

	suite, err := SuiteFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "product-suite", suite.Name)
	require.Len(t, suite.Files, 2)

	// Paths resolve relative to the manifest directory.
	assert.Equal(t, filepath.Join(dir, "pict", "valid_test_cases.csv"), suite.Files[0].Path)
	assert.Equal(t, ExpectPass, suite.Files[0].Expect)
	assert.Equal(t, ExpectFail, suite.Files[1].Expect)
	assert.Equal(t, "title", suite.Files[1].Field)
}

func TestSuiteFromFileErrors(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
	}{
		{
			name:     "wrong kind",
			manifest: "kind: recipe\nspec:\n  matrices:\n    - path: a.csv\n      expect: pass\n",
		},
		{
			name:     "no matrices",
			manifest: "kind: matrixSuite\nspec:\n  matrices: []\n",
		},
		{
			name:     "fail without field",
			manifest: "kind: matrixSuite\nspec:\n  matrices:\n    - path: a.csv\n      expect: fail\n",
		},
		{
			name:     "unknown expectation",
			manifest: "kind: matrixSuite\nspec:\n  matrices:\n    - path: a.csv\n      expect: maybe\n",
		},
		{
			name:     "unknown field",
			manifest: "kind: matrixSuite\nspec:\n  matrices:\n    - path: a.csv\n      expect: fail\n      field: bogus\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "suite.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.manifest), 0o644))

			_, err := SuiteFromFile(path)
			require.Error(t, err)
			assert.True(t, harnesserrors.HasCode(err, harnesserrors.ErrCodeInvalidInput))
		})
	}
}
