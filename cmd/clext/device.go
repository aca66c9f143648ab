package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/xerrors"

	"github.com/haormj/clext/cl"
)

func newDeviceCmd(opts *options) *cobra.Command {
	var (
		platform, device int
		deviceType       string
	)
	cmd := &cobra.Command{
		Use:   "device",
		Short: "Show one device, picked by platform and device index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok := cl.ParseDeviceType(deviceType)
			if !ok {
				return xerrors.Errorf("clext: unknown device type %q", deviceType)
			}
			rt, err := opts.openTarget()
			if err != nil {
				return err
			}
			defer closeTarget(rt)
			return writeDevice(cmd.OutOrStdout(), rt, rt, platform, device, t)
		},
	}
	cmd.Flags().IntVar(&platform, "platform", 0, "platform index")
	cmd.Flags().IntVar(&device, "device", 0, "device index among the platform's devices of --type")
	cmd.Flags().StringVar(&deviceType, "type", "all", "device type: default, cpu, gpu, accelerator, custom or all")
	return cmd
}

var deviceFields = []struct {
	label string
	param cl.DeviceInfo
}{
	{"name", cl.DeviceName},
	{"type", cl.DeviceTypeInfo},
	{"vendor", cl.DeviceVendor},
	{"version", cl.DeviceVersion},
}

func writeDevice(w io.Writer, rt cl.Runtime, in cl.Inspector, platform, device int, t cl.DeviceType) error {
	d, err := cl.SelectDevice(rt, in, platform, device, t)
	if err != nil {
		return xerrors.Errorf("clext: failed to select device %d.%d: %w", platform, device, err)
	}
	p, err := rt.DevicePlatform(d)
	if err != nil {
		return xerrors.Errorf("clext: failed to get platform of device %d.%d: %w", platform, device, err)
	}
	platformName, err := in.PlatformInfoString(p, cl.PlatformName)
	if err != nil {
		return xerrors.Errorf("clext: failed to get platform name: %w", err)
	}

	fmt.Fprintf(w, "%-9s %s\n", "platform:", platformName)
	for _, f := range deviceFields {
		s, err := in.DeviceInfoString(d, f.param)
		if err != nil {
			return xerrors.Errorf("clext: failed to get device %s: %w", f.label, err)
		}
		fmt.Fprintf(w, "%-9s %s\n", f.label+":", s)
	}
	return nil
}
