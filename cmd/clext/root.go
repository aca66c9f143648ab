package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"

	"github.com/haormj/clext/cl"
	"github.com/haormj/clext/cl/native"
	"github.com/haormj/clext/ext"
)

// target is an opened OpenCL runtime the commands report on.
type target interface {
	cl.Runtime
	cl.Inspector
	Close() error
}

type openFunc func(path string) (target, error)

func openNative(path string) (target, error) {
	lib, err := native.Open(path)
	if err != nil {
		return nil, err
	}
	return lib, nil
}

type options struct {
	open           openFunc
	library        string
	singlePlatform bool
	logLevel       string
}

func newRootCmd(open openFunc) *cobra.Command {
	opts := &options{open: open}
	cmd := &cobra.Command{
		Use:          "clext",
		Short:        "Inspect OpenCL platforms and extension dispatch tables",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(opts.logLevel)
			if err != nil {
				return xerrors.Errorf("clext: failed to parse log level: %w", err)
			}
			logrus.SetLevel(level)
			logrus.SetOutput(cmd.ErrOrStderr())
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.library, "library", os.Getenv("CLEXT_LIBRARY"),
		"path of the OpenCL ICD loader, defaults to $CLEXT_LIBRARY or "+defaultLibraryName())
	flags.BoolVar(&opts.singlePlatform, "single-platform", ext.DefaultMode == ext.SinglePlatform,
		"build one dispatch table from the first object seen instead of one per platform")
	flags.StringVar(&opts.logLevel, "log-level", "info", "logrus level: panic, fatal, error, warn, info, debug or trace")

	cmd.AddCommand(
		newPlatformsCmd(opts),
		newDeviceCmd(opts),
		newTablesCmd(opts),
		newLoaderCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

func defaultLibraryName() string {
	if native.DefaultLibrary == "" {
		return "nothing on this OS"
	}
	return native.DefaultLibrary
}

func (o *options) openTarget() (target, error) {
	t, err := o.open(o.library)
	if err != nil {
		return nil, xerrors.Errorf("clext: failed to open OpenCL library: %w", err)
	}
	logrus.WithField("library", o.library).Debug("opened OpenCL library")
	return t, nil
}

func (o *options) dispatcher(rt cl.Runtime) *ext.Dispatcher {
	mode := ext.MultiPlatform
	if o.singlePlatform {
		mode = ext.SinglePlatform
	}
	return ext.New(rt, ext.WithMode(mode), ext.WithLogger(logrus.StandardLogger()))
}

func closeTarget(t target) {
	if err := t.Close(); err != nil {
		logrus.WithError(err).Warn("failed to close OpenCL library")
	}
}
