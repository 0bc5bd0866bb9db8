// Package cli implements the distmap command-line interface.
//
// The CLI wraps the chamfer engine for image work: distance transforms
// of binary images, label dilation, erosion and influence zones, and
// geodesic distance inside a mask image. Masks are picked by built-in
// name or loaded from a TOML file.
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context; with --verbose the engine's own
// debug records are surfaced too.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogrid/chamfer"
	"github.com/gogrid/chamfer/maskfile"
)

var (
	version string // semantic version (e.g., "v0.3.0")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version. The
// main package calls this with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the distmap CLI under ctx and returns the first command
// error. Cancelling ctx aborts the running command.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "distmap",
		Short:        "Distmap computes chamfer distance maps on images",
		Long:         `Distmap computes weighted distance transforms of binary images, grows and shrinks label maps, and measures geodesic distance inside masked regions, using chamfer masks swept in two raster passes.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			chamfer.SetLogger(slog.New(logger))
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("distmap %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newDistanceCmd())
	root.AddCommand(newLabelsCmd())
	root.AddCommand(newGeodesicCmd())
	root.AddCommand(newMasksCmd())

	return root
}

// resolveMask picks a 2D mask by built-in name, or loads it from a
// TOML mask file when the argument looks like a path to one.
func resolveMask(name string) (*chamfer.Mask2D, error) {
	if strings.HasSuffix(name, ".toml") {
		f, err := maskfile.Load(name)
		if err != nil {
			return nil, err
		}
		return f.Mask2D()
	}
	return chamfer.LookupMask2D(name)
}
