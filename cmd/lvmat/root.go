// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmat/gridio"
	"github.com/katalvlaran/lvmat/matrix"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

var (
	errUnknownOutput = errors.New("unknown output format")
	errBadTolerance  = errors.New("tolerance must be finite")
)

// globalOpts holds the persistent flags shared by every subcommand.
type globalOpts struct {
	verbose     bool
	output      string
	singularTol float64
	eps         float64
	finiteOnly  bool
}

func newRootCommand() *cobra.Command {
	g := &globalOpts{}

	cmd := &cobra.Command{
		Use:           "lvmat",
		Short:         "Small dense matrix toolkit: determinant, cofactor inverse, cuts and products",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if g.verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}

			return g.validate()
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "Log debug details to stderr")
	pf.StringVarP(&g.output, "output", "o", outputText, "Output format for matrix results (text, yaml)")
	pf.Float64Var(&g.singularTol, "singular-tol", matrix.DefaultSingularTolerance,
		"Fail inversion when |det| <= tol (negative disables the check)")
	pf.Float64Var(&g.eps, "eps", matrix.DefaultEpsilon, "Tolerance used by --check comparisons")
	pf.BoolVar(&g.finiteOnly, "finite", false, "Reject NaN and Inf values in loaded and computed matrices")

	cmd.AddCommand(
		newDetCommand(g),
		newMinorCommand(g),
		newInverseCommand(g),
		newUnaryCommand(g, "cofactor", "Print the cofactor matrix", matrix.Cofactor),
		newUnaryCommand(g, "adjugate", "Print the adjugate (transposed cofactor matrix)", matrix.Adjugate),
		newUnaryCommand(g, "transpose", "Print the transpose", matrix.Transpose),
		newUnaryCommand(g, "ones", "Prepend a column of ones", matrix.PrependOnesColumn),
		newBinaryCommand(g, "mul", "Print the product A×B", matrix.Mul),
		newBinaryCommand(g, "sub", "Print the difference A−B", matrix.Sub),
		newScaleCommand(g),
		newProbCommand(g),
		newIdentityCommand(g),
		newCutCommand(g, "cut-row", "Drop one row", matrix.CutRow),
		newCutCommand(g, "cut-col", "Drop one column", matrix.CutCol),
	)

	return cmd
}

func (g *globalOpts) validate() error {
	switch g.output {
	case outputText, outputYAML:
	default:
		return fmt.Errorf("--output %q: %w", g.output, errUnknownOutput)
	}
	if math.IsNaN(g.singularTol) || math.IsInf(g.singularTol, 0) {
		return fmt.Errorf("--singular-tol: %w", errBadTolerance)
	}
	if math.IsNaN(g.eps) || math.IsInf(g.eps, 0) || g.eps < 0 {
		return fmt.Errorf("--eps: %w", errBadTolerance)
	}

	return nil
}

// matrixOptions maps the flags onto matrix options.
func (g *globalOpts) matrixOptions() []matrix.Option {
	opts := []matrix.Option{matrix.WithEpsilon(g.eps)}
	if g.singularTol >= 0 {
		opts = append(opts, matrix.WithSingularTolerance(g.singularTol))
	}
	if g.finiteOnly {
		opts = append(opts, matrix.WithValidateNaNInf())
	}

	return opts
}

func (g *globalOpts) load(path string) (*matrix.Dense, error) {
	m, err := gridio.ReadFile(path, g.matrixOptions()...)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"path": path,
		"rows": m.Rows(),
		"cols": m.Cols(),
	}).Debug("loaded matrix")

	return m, nil
}

func (g *globalOpts) emit(w io.Writer, m matrix.Matrix) error {
	if g.output == outputYAML {
		return gridio.Encode(w, m)
	}
	_, err := fmt.Fprint(w, m)

	return err
}

func emitScalar(w io.Writer, v float64) error {
	_, err := fmt.Fprintln(w, strconv.FormatFloat(v, 'g', -1, 64))

	return err
}

func parseIndex(name, s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", name, s, err)
	}

	return i, nil
}
