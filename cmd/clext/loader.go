package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/xerrors"

	"github.com/haormj/clext/cl"
	"github.com/haormj/clext/ext"
)

func newLoaderCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "loader",
		Short: "Show what the ICD loader reports about itself through cl_loader_info",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.openTarget()
			if err != nil {
				return err
			}
			defer closeTarget(rt)
			return writeLoaderInfo(cmd.OutOrStdout(), opts.dispatcher(rt))
		},
	}
}

var loaderFields = []struct {
	label string
	param cl.ICDLoaderInfo
}{
	{"name", cl.ICDLName},
	{"vendor", cl.ICDLVendor},
	{"version", cl.ICDLVersion},
	{"OpenCL version", cl.ICDLOCLVersion},
}

func writeLoaderInfo(w io.Writer, d *ext.Dispatcher) error {
	if !d.Common().Has("clGetICDLoaderInfoOCLICD") {
		return xerrors.Errorf("clext: loader does not support cl_loader_info: %w", cl.ErrUnsupported)
	}
	for _, f := range loaderFields {
		s, err := d.LoaderInfoString(f.param)
		if err != nil {
			return xerrors.Errorf("clext: failed to get loader %s: %w", f.label, err)
		}
		fmt.Fprintf(w, "%-15s %s\n", f.label+":", s)
	}
	return nil
}
