// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmat/matrix"
)

var errCheckFailed = errors.New("inverse check failed: M·M⁻¹ is not close to I")

func newDetCommand(g *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "det FILE",
		Short: "Print the determinant (cofactor expansion, O(n!))",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := g.load(args[0])
			if err != nil {
				return err
			}
			start := time.Now()
			det, err := matrix.Determinant(m)
			if err != nil {
				return err
			}
			logrus.WithField("elapsed", time.Since(start)).Debug("determinant done")

			return emitScalar(cmd.OutOrStdout(), det)
		},
	}
}

func newMinorCommand(g *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "minor FILE ROW COL",
		Short: "Print the determinant of the submatrix without ROW and COL",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := g.load(args[0])
			if err != nil {
				return err
			}
			row, err := parseIndex("ROW", args[1])
			if err != nil {
				return err
			}
			col, err := parseIndex("COL", args[2])
			if err != nil {
				return err
			}
			v, err := matrix.Minor(m, row, col)
			if err != nil {
				return err
			}

			return emitScalar(cmd.OutOrStdout(), v)
		},
	}
}

func newInverseCommand(g *globalOpts) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "inv FILE",
		Short: "Print the inverse computed as adj(A)/det(A)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := g.load(args[0])
			if err != nil {
				return err
			}
			opts := g.matrixOptions()
			start := time.Now()
			inv, err := matrix.Inverse(m, opts...)
			if err != nil {
				return err
			}
			logrus.WithField("elapsed", time.Since(start)).Debug("inverse done")

			if check {
				if err = checkInverse(m, inv, opts); err != nil {
					return err
				}
				logrus.Debug("inverse check passed")
			}

			return g.emit(cmd.OutOrStdout(), inv)
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "Verify M·M⁻¹ ≈ I within --eps before printing")

	return cmd
}

func checkInverse(m, inv matrix.Matrix, opts []matrix.Option) error {
	prod, err := matrix.Mul(m, inv)
	if err != nil {
		return err
	}
	id, err := matrix.IdentityLike(m)
	if err != nil {
		return err
	}
	ok, err := matrix.Close(prod, id, opts...)
	if err != nil {
		return err
	}
	if !ok {
		logrus.WithField("product", prod).Warn("inverse check mismatch")

		return errCheckFailed
	}

	return nil
}

func newUnaryCommand(g *globalOpts, name, short string, op func(matrix.Matrix) (matrix.Matrix, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " FILE",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := g.load(args[0])
			if err != nil {
				return err
			}
			out, err := op(m)
			if err != nil {
				return err
			}

			return g.emit(cmd.OutOrStdout(), out)
		},
	}
}

func newBinaryCommand(g *globalOpts, name, short string, op func(a, b matrix.Matrix) (matrix.Matrix, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " A B",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.load(args[0])
			if err != nil {
				return err
			}
			b, err := g.load(args[1])
			if err != nil {
				return err
			}
			out, err := op(a, b)
			if err != nil {
				return err
			}

			return g.emit(cmd.OutOrStdout(), out)
		},
	}
}

func newScaleCommand(g *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "scale FILE FACTOR",
		Short: "Multiply every entry by FACTOR",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := g.load(args[0])
			if err != nil {
				return err
			}
			k, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("FACTOR %q: %w", args[1], err)
			}
			out, err := matrix.Scale(m, k)
			if err != nil {
				return err
			}

			return g.emit(cmd.OutOrStdout(), out)
		},
	}
}

func newProbCommand(g *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "prob FILE",
		Short: "Normalize every row to sum to one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := g.load(args[0])
			if err != nil {
				return err
			}
			if err = matrix.ToProbabilities(m); err != nil {
				return err
			}

			return g.emit(cmd.OutOrStdout(), m)
		},
	}
}

func newIdentityCommand(g *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "identity N",
		Short: "Print the N×N identity matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseIndex("N", args[0])
			if err != nil {
				return err
			}
			id, err := matrix.NewIdentity(n)
			if err != nil {
				return err
			}

			return g.emit(cmd.OutOrStdout(), id)
		},
	}
}

func newCutCommand(g *globalOpts, name, short string, op func(matrix.Matrix, int) (matrix.Matrix, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " FILE INDEX",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := g.load(args[0])
			if err != nil {
				return err
			}
			idx, err := parseIndex("INDEX", args[1])
			if err != nil {
				return err
			}
			out, err := op(m, idx)
			if err != nil {
				return err
			}

			return g.emit(cmd.OutOrStdout(), out)
		},
	}
}
