package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spectra/eigen"
	"github.com/katalvlaran/spectra/matrix"
	"github.com/katalvlaran/spectra/qr"
)

func newQRCmd(c *cli) *cobra.Command {
	var (
		literal        string
		signCorrection bool
	)
	cmd := &cobra.Command{
		Use:   "qr",
		Short: "Factor a matrix into Q·R with Householder reflections",
		Example: `  spectra qr --matrix "1,1,4;2,1,4"
  spectra qr --matrix "12 -51 4; 6 167 -68; -4 24 -41" --sign-correction`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := matrix.Parse(literal)
			if err != nil {
				return err
			}
			stable := c.cfg.SignCorrection
			if cmd.Flags().Changed("sign-correction") {
				stable = signCorrection
			}
			var opts []qr.Option
			if stable {
				opts = append(opts, qr.WithSignCorrection())
			}
			res, err := qr.Decompose(a, opts...)
			if err != nil {
				return err
			}
			back, err := res.Reconstruct()
			if err != nil {
				return err
			}
			residual, err := matrix.MaxAbsDiff(back, a)
			if err != nil {
				return err
			}
			c.logger.Debug("factored",
				zap.Int("rows", a.Rows()),
				zap.Int("cols", a.Cols()),
				zap.Int("reflections", res.Reflections))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Q:\n%v", res.Q)
			fmt.Fprintf(out, "R:\n%v", res.R)
			fmt.Fprintf(out, "reflections: %d\n", res.Reflections)
			fmt.Fprintf(out, "reconstruction error: %g\n", residual)
			return nil
		},
	}
	cmd.Flags().StringVarP(&literal, "matrix", "m", "", "Matrix literal, e.g. \"1,2;3,4\" (required)")
	cmd.Flags().BoolVar(&signCorrection, "sign-correction", false, "Use the sign-stable reflector rule")
	_ = cmd.MarkFlagRequired("matrix")

	return cmd
}

func newEigenCmd(c *cli) *cobra.Command {
	var (
		literal string
		flags   Config
		verify  bool
	)
	cmd := &cobra.Command{
		Use:   "eigen",
		Short: "Approximate eigenvalues with the unshifted QR algorithm",
		Example: `  spectra eigen --matrix "2,1;1,2"
  spectra eigen --matrix "0,-1;1,0" --max-iter 10 --verbose
  spectra eigen --matrix "2,-1,0;-1,2,-1;0,-1,2" --tol 1e-12 --verify`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.cfg
			if cmd.Flags().Changed("tol") {
				cfg.Tolerance = flags.Tolerance
			}
			if cmd.Flags().Changed("max-iter") {
				cfg.MaxIterations = flags.MaxIterations
			}
			if cmd.Flags().Changed("dedupe") {
				cfg.Deduplicate = flags.Deduplicate
			}
			if cmd.Flags().Changed("sign-correction") {
				cfg.SignCorrection = flags.SignCorrection
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			a, err := matrix.Parse(literal)
			if err != nil {
				return err
			}
			res, err := eigen.Solve(a, append(cfg.Options(), eigen.WithLogger(c.logger))...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, v := range res.Values {
				fmt.Fprintf(out, "λ%d = %s\n", i+1, v.Text(printPrecision))
			}
			fmt.Fprintf(out, "iterations: %d\n", res.Iterations)
			fmt.Fprintf(out, "converged: %t\n", res.Converged)
			if !verify {
				return nil
			}

			g, err := matrix.ToGonum(a)
			if err != nil {
				return err
			}
			var eig mat.Eigen
			if !eig.Factorize(g, mat.EigenNone) {
				return errors.New("gonum eigen factorization failed")
			}
			ref := eig.Values(nil)
			sort.Slice(ref, func(i, j int) bool {
				if real(ref[i]) != real(ref[j]) {
					return real(ref[i]) > real(ref[j])
				}
				return imag(ref[i]) > imag(ref[j])
			})
			for i, v := range ref {
				ev := eigen.ComplexValue(real(v), imag(v))
				if imag(v) == 0 {
					ev = eigen.RealValue(real(v))
				}
				fmt.Fprintf(out, "gonum λ%d = %s\n", i+1, ev.Text(printPrecision))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&literal, "matrix", "m", "", "Square matrix literal, e.g. \"2,1;1,2\" (required)")
	cmd.Flags().Float64Var(&flags.Tolerance, "tol", eigen.DefaultTolerance, "Convergence and sub-diagonal tolerance")
	cmd.Flags().IntVar(&flags.MaxIterations, "max-iter", eigen.DefaultMaxIterations, "Iteration budget")
	cmd.Flags().BoolVar(&flags.Deduplicate, "dedupe", false, "Collapse eigenvalues equal within the tolerance")
	cmd.Flags().BoolVar(&flags.SignCorrection, "sign-correction", false, "Use the sign-stable reflector rule")
	cmd.Flags().BoolVar(&verify, "verify", false, "Also print gonum's eigenvalues for comparison")
	_ = cmd.MarkFlagRequired("matrix")

	return cmd
}
