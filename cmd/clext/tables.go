package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/xerrors"

	"github.com/haormj/clext/cl"
	"github.com/haormj/clext/ext"
)

func newTablesCmd(opts *options) *cobra.Command {
	var (
		platform int
		missing  bool
	)
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Build the extension dispatch tables and list the entry points each platform provides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.openTarget()
			if err != nil {
				return err
			}
			defer closeTarget(rt)

			d := opts.dispatcher(rt)
			tables, err := collectTables(d, rt, platform)
			if err != nil {
				return err
			}
			return writeTables(cmd.OutOrStdout(), rt, tables, missing)
		},
	}
	cmd.Flags().IntVar(&platform, "platform", -1, "only report the platform with this index")
	cmd.Flags().BoolVar(&missing, "missing", false, "list the entry points the platform does not provide instead")
	return cmd
}

// collectTables returns the tables d serves for the platform at index, or for
// every platform when index is negative. In single-platform mode the table is
// built from the selected platform, the first one by default.
func collectTables(d *ext.Dispatcher, rt cl.Runtime, index int) ([]*ext.Table, error) {
	platforms, err := rt.PlatformIDs()
	if err != nil {
		return nil, xerrors.Errorf("clext: failed to get platforms: %w", err)
	}
	if index >= len(platforms) {
		return nil, xerrors.Errorf("clext: invalid platform index %d: %w", index, cl.ErrIndexOutOfRange)
	}
	if len(platforms) == 0 {
		return nil, nil
	}

	if d.Mode() == ext.SinglePlatform {
		if index < 0 {
			index = 0
		}
		if t := d.Table(platforms[index]); t != nil {
			return []*ext.Table{t}, nil
		}
		return nil, nil
	}

	d.Init()
	tables := d.Tables()
	if index < 0 {
		return tables, nil
	}
	for _, t := range tables {
		if t.Platform() == platforms[index] {
			return []*ext.Table{t}, nil
		}
	}
	return nil, nil
}

func writeTables(w io.Writer, in cl.Inspector, tables []*ext.Table, missing bool) error {
	if len(tables) == 0 {
		fmt.Fprintln(w, "no dispatch tables built")
		return nil
	}

	total := len(ext.Procs())
	for _, t := range tables {
		name, err := in.PlatformInfoString(t.Platform(), cl.PlatformName)
		if err != nil {
			return xerrors.Errorf("clext: failed to get platform name: %w", err)
		}
		resolved := t.Resolved()
		fmt.Fprintf(w, "%s: %d of %d entry points resolved\n", name, len(resolved), total)

		procs := resolved
		if missing {
			procs = t.Missing()
		}
		advertised := make(map[string]bool)
		for _, p := range procs {
			ok, seen := advertised[p.Extension]
			if !seen {
				var err error
				if ok, err = cl.SupportsExtension(in, t.Platform(), p.Extension); err != nil {
					return xerrors.Errorf("clext: failed to check extension %s: %w", p.Extension, err)
				}
				advertised[p.Extension] = ok
			}
			fmt.Fprintf(w, "  %-48s %s%s\n", p.Name, p.Extension, advertisedNote(ok, missing))
		}
	}
	return nil
}

// advertisedNote flags entry points whose presence disagrees with the
// platform's extension string.
func advertisedNote(advertised, missing bool) string {
	switch {
	case missing && advertised:
		return " (advertised)"
	case !missing && !advertised:
		return " (not advertised)"
	}
	return ""
}
