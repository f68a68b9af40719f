// SPDX-License-Identifier: MIT

// Package chainfile - decoding and validation of chain definition files.
package chainfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dtmc/chain"
	"github.com/katalvlaran/dtmc/validate"
)

// Sentinel errors for definition decoding.
var (
	// ErrUnsupportedFormat indicates a file extension other than
	// .json/.yaml/.yml.
	ErrUnsupportedFormat = errors.New("chainfile: unsupported file format")

	// ErrEmptyDocument indicates a document with no states and no matrix.
	ErrEmptyDocument = errors.New("chainfile: empty definition document")

	// ErrMalformedDocument wraps codec-level parse failures.
	ErrMalformedDocument = errors.New("chainfile: malformed definition document")
)

// Definition is the raw, not-yet-validated shape of a chain document.
// Field values are exactly what the codec produced; all invariants are
// enforced afterwards by the validation layer.
type Definition struct {
	States  []string    `json:"states" yaml:"states"`
	Matrix  [][]float64 `json:"matrix" yaml:"matrix"`
	Initial []float64   `json:"initial,omitempty" yaml:"initial,omitempty"`
}

// Document is the canonical result of loading a definition: a valid
// chain plus the optional validated initial distribution (nil when the
// document had none).
type Document struct {
	Chain   *chain.MarkovChain
	Initial []float64
}

// DecodeJSON reads one JSON definition from r and canonicalizes it.
// Errors: ErrMalformedDocument, ErrEmptyDocument, validate taxonomy.
func DecodeJSON(r io.Reader) (*Document, error) {
	var def Definition
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return canonicalize(def)
}

// DecodeYAML reads one YAML definition from r and canonicalizes it.
// Errors: ErrMalformedDocument, ErrEmptyDocument, validate taxonomy.
func DecodeYAML(r io.Reader) (*Document, error) {
	var def Definition
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return canonicalize(def)
}

// Load reads a definition file, choosing the codec by extension.
// Errors: ErrUnsupportedFormat, file-system errors, plus DecodeX errors.
func Load(path string) (*Document, error) {
	var decode func(io.Reader) (*Document, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		decode = DecodeJSON
	case ".yaml", ".yml":
		decode = DecodeYAML
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decode(f)
}

// canonicalize funnels a raw Definition through the validation layer.
// The decoded fields receive the same treatment as direct caller input:
// universe + row-stochastic gate via chain.New, distribution +
// initial-status agreement via validate.Distribution.
func canonicalize(def Definition) (*Document, error) {
	if len(def.States) == 0 && len(def.Matrix) == 0 {
		return nil, ErrEmptyDocument
	}
	mc, err := chain.New(def.States, def.Matrix)
	if err != nil {
		return nil, err
	}

	doc := &Document{Chain: mc}
	if def.Initial != nil {
		spec, derr := validate.Distribution(def.Initial, mc.Size())
		if derr != nil {
			return nil, validate.Wrap("initial", derr)
		}
		doc.Initial = spec.Sequence()[0]
	}
	return doc, nil
}
