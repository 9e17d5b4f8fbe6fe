// SPDX-License-Identifier: MIT

package gridio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmat/matrix"
)

// ErrEmptyDocument is returned when the input holds no document or no rows.
var ErrEmptyDocument = errors.New("gridio: empty document")

const rowsKey = "rows"

// document is the on-disk shape.
type document struct {
	Rows [][]float64 `yaml:"rows"`
}

// Decode reads one YAML document from r and builds a *matrix.Dense from it.
// opts are forwarded to matrix.NewDenseFrom (e.g. matrix.WithValidateNaNInf).
// Unknown keys are rejected.
func Decode(r io.Reader, opts ...matrix.Option) (*matrix.Dense, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}

		return nil, fmt.Errorf("gridio: yaml decode: %w", err)
	}
	if len(doc.Rows) == 0 {
		return nil, ErrEmptyDocument
	}

	m, err := matrix.NewDenseFrom(doc.Rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("gridio: build matrix: %w", err)
	}

	return m, nil
}

// Encode writes m to w as a "rows:" document, one flow-style row per line.
func Encode(w io.Writer, m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("gridio: encode: %w", err)
	}

	root, err := toNode(m)
	if err != nil {
		return fmt.Errorf("gridio: encode: %w", err)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(root); err != nil {
		return fmt.Errorf("gridio: yaml encode: %w", err)
	}

	return enc.Close()
}

// toNode builds the document node by hand so each row can carry FlowStyle.
func toNode(m matrix.Matrix) (*yaml.Node, error) {
	rows := &yaml.Node{Kind: yaml.SequenceNode}
	row := make([]float64, m.Cols())
	var err error
	for i := 0; i < m.Rows(); i++ {
		for j := range row {
			if row[j], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
		var rn yaml.Node
		if err = rn.Encode(row); err != nil {
			return nil, err
		}
		rn.Style = yaml.FlowStyle
		rows.Content = append(rows.Content, &rn)
	}

	return &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: rowsKey},
			rows,
		},
	}, nil
}

// ReadFile decodes the matrix stored at path.
func ReadFile(path string, opts ...matrix.Option) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridio: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Decode(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// WriteFile encodes m into path, creating or truncating it.
func WriteFile(path string, m matrix.Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gridio: create %s: %w", path, err)
	}
	if err = Encode(f, m); err != nil {
		_ = f.Close()

		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("gridio: close %s: %w", path, err)
	}

	return nil
}
