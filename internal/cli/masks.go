package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gogrid/chamfer"
	"github.com/gogrid/chamfer/maskfile"
)

func newMasksCmd() *cobra.Command {
	var custom string

	cmd := &cobra.Command{
		Use:   "masks",
		Short: "List the built-in chamfer masks",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if custom != "" {
				return runCustomMask(c.OutOrStdout(), custom)
			}
			return runMasks(c.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&custom, "custom", "", "describe a TOML mask file instead of the catalogue")
	return cmd
}

// runCustomMask validates a TOML mask file and prints its summary.
func runCustomMask(w io.Writer, path string) error {
	f, err := maskfile.Load(path)
	if err != nil {
		return err
	}
	name := f.Name
	if name == "" {
		name = path
	}
	var offsets, norm int
	switch f.Dim {
	case 2:
		m, err := f.Mask2D()
		if err != nil {
			return err
		}
		offsets, norm = len(m.Offsets()), m.Normalization()
	case 3:
		m, err := f.Mask3D()
		if err != nil {
			return err
		}
		offsets, norm = len(m.Offsets()), m.Normalization()
	}
	fmt.Fprintf(w, "%s %s\n",
		styleName.Render(name),
		styleDim.Render(fmt.Sprintf("%dD, %d offsets, norm %d", f.Dim, offsets, norm)))
	return nil
}

func runMasks(w io.Writer) error {
	fmt.Fprintln(w, styleTitle.Render("2D masks"))
	for _, name := range chamfer.MaskNames2D() {
		m, err := chamfer.LookupMask2D(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s %s\n",
			styleName.Render(fmt.Sprintf("%-14s", name)),
			styleDim.Render(fmt.Sprintf("%2d offsets, norm %d", len(m.Offsets()), m.Normalization())))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, styleTitle.Render("3D masks"))
	for _, name := range chamfer.MaskNames3D() {
		m, err := chamfer.LookupMask3D(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s %s\n",
			styleName.Render(fmt.Sprintf("%-14s", name)),
			styleDim.Render(fmt.Sprintf("%2d offsets, norm %d", len(m.Offsets()), m.Normalization())))
	}
	return nil
}
