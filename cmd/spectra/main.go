// Command spectra factors matrices and approximates their eigenvalues.
//
//	spectra qr --matrix "1,1,4;2,1,4"
//	spectra eigen --matrix "2,1;1,2" --tol 1e-9 --verify
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// printPrecision is the number of significant digits of printed eigenvalues.
const printPrecision = 10

// cli carries the state shared by every subcommand.
type cli struct {
	verbose    bool
	configPath string

	logger *zap.Logger
	cfg    Config
}

// newRootCmd assembles the command tree. A non-nil logger is used as is;
// otherwise a production logger is built before each run.
func newRootCmd(logger *zap.Logger) *cobra.Command {
	c := &cli{logger: logger, cfg: DefaultConfig()}
	injected := logger != nil

	root := &cobra.Command{
		Use:   "spectra",
		Short: "Householder QR factorization and QR-algorithm eigenvalues",
		Long: `spectra factors a real matrix A = Q·R with explicit Householder reflections
and approximates eigenvalues of square matrices with the unshifted QR algorithm.

Matrices are given as literals: rows separated by ';', columns by ',' or spaces.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !injected {
				config := zap.NewProductionConfig()
				if c.verbose {
					config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
				}
				logger, err := config.Build()
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
				c.logger = logger
			}
			if c.configPath != "" {
				cfg, err := LoadConfig(c.configPath)
				if err != nil {
					return err
				}
				c.cfg = cfg
				c.logger.Debug("config loaded", zap.String("path", c.configPath))
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil && !injected {
				_ = c.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging (per-iteration tracing)")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "YAML file with solver defaults")

	root.AddCommand(newQRCmd(c))
	root.AddCommand(newEigenCmd(c))

	return root
}

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
