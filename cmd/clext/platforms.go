package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/xerrors"

	"github.com/haormj/clext/cl"
)

func newPlatformsCmd(opts *options) *cobra.Command {
	var deviceType, version string
	cmd := &cobra.Command{
		Use:   "platforms",
		Short: "List OpenCL platforms and their devices",
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
			return writePlatforms(cmd.OutOrStdout(), rt, rt, t, version)
		},
	}
	cmd.Flags().StringVar(&deviceType, "type", "all", "device type to list: default, cpu, gpu, accelerator, custom or all")
	cmd.Flags().StringVar(&version, "cl-version", "", "only list platforms whose version contains this, e.g. \"OpenCL 3.\"")
	return cmd
}

// writePlatforms lists the platforms whose version string contains version,
// every platform when it is empty, with their devices of type t. Platform
// numbers are enumeration indices, so they stay valid for --platform.
func writePlatforms(w io.Writer, rt cl.Runtime, in cl.Inspector, t cl.DeviceType, version string) error {
	platforms, err := rt.PlatformIDs()
	if err != nil {
		return xerrors.Errorf("clext: failed to get platforms: %w", err)
	}
	if len(platforms) == 0 {
		fmt.Fprintln(w, "no OpenCL platforms found")
		return nil
	}

	for i, p := range platforms {
		if version != "" {
			ok, err := cl.PlatformVersionContains(in, p, version)
			if err != nil {
				return xerrors.Errorf("clext: failed to check version of platform %d: %w", i, err)
			}
			if !ok {
				continue
			}
		}

		name, err := in.PlatformInfoString(p, cl.PlatformName)
		if err != nil {
			return xerrors.Errorf("clext: failed to get name of platform %d: %w", i, err)
		}
		vendor, err := in.PlatformInfoString(p, cl.PlatformVendor)
		if err != nil {
			return xerrors.Errorf("clext: failed to get vendor of platform %d: %w", i, err)
		}
		platformVersion, err := in.PlatformInfoString(p, cl.PlatformVersion)
		if err != nil {
			return xerrors.Errorf("clext: failed to get version of platform %d: %w", i, err)
		}
		fmt.Fprintf(w, "Platform #%d: %s\n", i, name)
		fmt.Fprintf(w, "  vendor:  %s\n", vendor)
		fmt.Fprintf(w, "  version: %s\n", platformVersion)

		devices, err := in.DeviceIDs(p, t)
		if errors.Is(err, cl.DeviceNotFound) {
			fmt.Fprintf(w, "  no devices of type %s\n", t)
			continue
		}
		if err != nil {
			return xerrors.Errorf("clext: failed to get devices of platform %d: %w", i, err)
		}
		for j, d := range devices {
			devName, err := in.DeviceInfoString(d, cl.DeviceName)
			if err != nil {
				return xerrors.Errorf("clext: failed to get name of device %d.%d: %w", i, j, err)
			}
			devType, err := in.DeviceInfoString(d, cl.DeviceTypeInfo)
			if err != nil {
				return xerrors.Errorf("clext: failed to get type of device %d.%d: %w", i, j, err)
			}
			fmt.Fprintf(w, "  Device #%d: %s (%s)\n", j, devName, devType)
		}
	}
	return nil
}
