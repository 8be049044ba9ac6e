/*
Copyright © 2025 the pictverify authors
SPDX-License-Identifier: Apache-2.0
*/

package matrix

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	harnesserrors "github.com/pictverify/pictverify/pkg/errors"
	"github.com/pictverify/pictverify/pkg/token"
)

const (
	// SuiteKind is the manifest kind for matrix suites.
	SuiteKind = "matrixSuite"

	// SuiteAPIVersion is the manifest API version for matrix suites.
	SuiteAPIVersion = "pictverify.io/v1alpha1"
)

// Expectation is the file-level expected classification.
type Expectation string

// Expectation values.
const (
	// ExpectPass means every row must produce an empty violation set.
	ExpectPass Expectation = "pass"

	// ExpectFail means every row must produce a non-empty violation set.
	ExpectFail Expectation = "fail"
)

// File is one matrix file plus its expectation.
type File struct {
	// Path is the matrix file location.
	Path string

	// Category tags report rows from this file: "valid" for pass files,
	// the targeted field name for fail files.
	Category string

	// Expect is the file-level expected classification.
	Expect Expectation

	// Field is the targeted field for ExpectFail files, empty otherwise.
	Field string
}

// Suite is an ordered set of matrix files. Order is preserved through the
// run and into the report.
type Suite struct {
	Name  string
	Files []File
}

type suiteManifest struct {
	Kind       string `yaml:"kind"`
	APIVersion string `yaml:"apiVersion"`
	Metadata   struct {
		Name string `yaml:"name"`
	} `yaml:"metadata"`
	Spec struct {
		Matrices []struct {
			Path   string `yaml:"path"`
			Expect string `yaml:"expect"`
			Field  string `yaml:"field"`
		} `yaml:"matrices"`
	} `yaml:"spec"`
}

// SuiteFromFile loads a YAML suite manifest. Matrix paths are resolved
// relative to the manifest's directory.
func SuiteFromFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, harnesserrors.Wrap(harnesserrors.ErrCodeInvalidInput, err,
			fmt.Sprintf("cannot read suite manifest %q", path))
	}

	var m suiteManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, harnesserrors.Wrap(harnesserrors.ErrCodeInvalidInput, err,
			fmt.Sprintf("cannot parse suite manifest %q", path))
	}
	if m.Kind != SuiteKind {
		return nil, harnesserrors.Newf(harnesserrors.ErrCodeInvalidInput,
			"suite manifest %q has kind %q, expected %q", path, m.Kind, SuiteKind)
	}
	if len(m.Spec.Matrices) == 0 {
		return nil, harnesserrors.Newf(harnesserrors.ErrCodeInvalidInput,
			"suite manifest %q lists no matrices", path)
	}

	base := filepath.Dir(path)
	suite := &Suite{Name: m.Metadata.Name}
	for _, entry := range m.Spec.Matrices {
		mf := File{Path: entry.Path}
		if !filepath.IsAbs(mf.Path) {
			mf.Path = filepath.Join(base, entry.Path)
		}

		switch Expectation(entry.Expect) {
		case ExpectPass:
			mf.Expect = ExpectPass
			mf.Category = "valid"
		case ExpectFail:
			if entry.Field == "" {
				return nil, harnesserrors.Newf(harnesserrors.ErrCodeInvalidInput,
					"matrix %q expects fail but names no field", entry.Path)
			}
			if !knownField(entry.Field) {
				return nil, harnesserrors.Newf(harnesserrors.ErrCodeInvalidInput,
					"matrix %q targets unknown field %q", entry.Path, entry.Field)
			}
			mf.Expect = ExpectFail
			mf.Field = entry.Field
			mf.Category = entry.Field
		default:
			return nil, harnesserrors.Newf(harnesserrors.ErrCodeInvalidInput,
				"matrix %q has expectation %q, expected %q or %q",
				entry.Path, entry.Expect, ExpectPass, ExpectFail)
		}

		suite.Files = append(suite.Files, mf)
	}
	return suite, nil
}

// SuiteFromPaths builds a suite from matrix file paths alone, deriving
// each expectation from the file name: valid_*  expects pass,
// invalid_<field>_* expects fail on <field>.
func SuiteFromPaths(paths []string) (*Suite, error) {
	if len(paths) == 0 {
		return nil, harnesserrors.New(harnesserrors.ErrCodeInvalidInput,
			"no matrix files given")
	}

	suite := &Suite{}
	for _, p := range paths {
		mf, err := classifyPath(p)
		if err != nil {
			return nil, err
		}
		suite.Files = append(suite.Files, mf)
	}
	return suite, nil
}

// knownField reports whether field names one of the fixed matrix columns.
func knownField(field string) bool {
	for _, col := range token.Columns {
		if col == field {
			return true
		}
	}
	return false
}

// classifyPath derives the expectation from a matrix file name.
func classifyPath(path string) (File, error) {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))

	switch {
	case strings.HasPrefix(name, "valid"):
		return File{Path: path, Expect: ExpectPass, Category: "valid"}, nil
	case strings.HasPrefix(name, "invalid_"):
		field := strings.TrimPrefix(name, "invalid_")
		field = strings.TrimSuffix(field, "_cases")
		field = strings.TrimSuffix(field, "_test_cases")
		if field == "" || !knownField(field) {
			return File{}, harnesserrors.Newf(harnesserrors.ErrCodeInvalidInput,
				"matrix file %q targets unknown field %q", path, field)
		}
		return File{Path: path, Expect: ExpectFail, Field: field, Category: field}, nil
	default:
		return File{}, harnesserrors.Newf(harnesserrors.ErrCodeInvalidInput,
			"cannot derive expectation from matrix file name %q: use valid_* or invalid_<field>_*", path)
	}
}
