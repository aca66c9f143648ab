package cl

import (
	"slices"
	"strings"

	"golang.org/x/xerrors"
)

// ErrIndexOutOfRange is returned by SelectDevice for a platform or device
// index that does not exist.
var ErrIndexOutOfRange error = UtilIndexOutOfRange

// SupportsExtension reports whether ext is one of the names in the platform's
// extension string.
func SupportsExtension(in Inspector, p Platform, ext string) (bool, error) {
	exts, err := in.PlatformInfoString(p, PlatformExtensions)
	if err != nil {
		return false, xerrors.Errorf("cl: failed to query platform extensions: %w", err)
	}
	return slices.Contains(strings.Fields(exts), ext), nil
}

// PlatformVersionContains reports whether the platform version string
// contains fragment, e.g. "OpenCL 3.".
func PlatformVersionContains(in Inspector, p Platform, fragment string) (bool, error) {
	version, err := in.PlatformInfoString(p, PlatformVersion)
	if err != nil {
		return false, xerrors.Errorf("cl: failed to query platform version: %w", err)
	}
	return strings.Contains(version, fragment), nil
}

// SelectDevice picks a device by platform and device index among the devices
// of type t.
func SelectDevice(rt Runtime, in Inspector, platformIndex, deviceIndex int, t DeviceType) (Device, error) {
	platforms, err := rt.PlatformIDs()
	if err != nil {
		return 0, xerrors.Errorf("cl: failed to get platforms: %w", err)
	}
	if platformIndex < 0 || platformIndex >= len(platforms) {
		return 0, xerrors.Errorf("cl: invalid platform index %d: %w", platformIndex, ErrIndexOutOfRange)
	}

	devices, err := in.DeviceIDs(platforms[platformIndex], t)
	if err != nil {
		return 0, xerrors.Errorf("cl: failed to get devices: %w", err)
	}
	if deviceIndex < 0 || deviceIndex >= len(devices) {
		return 0, xerrors.Errorf("cl: invalid device index %d: %w", deviceIndex, ErrIndexOutOfRange)
	}

	return devices[deviceIndex], nil
}
