//go:build !(darwin || linux)

package native

import (
	"golang.org/x/xerrors"

	"github.com/haormj/clext/cl"
)

// DefaultLibrary is empty where loading the ICD loader is not supported.
const DefaultLibrary = ""

// Library is never successfully opened on this platform.
type Library struct{}

var (
	_ cl.Runtime   = &Library{}
	_ cl.Inspector = &Library{}
)

func Open(path string) (*Library, error) {
	return nil, xerrors.Errorf("native: failed to open %q: %w", path, cl.ErrUnsupported)
}

func (l *Library) Path() string { return "" }
func (l *Library) Close() error { return nil }

func (l *Library) PlatformIDs() ([]cl.Platform, error)            { return nil, cl.ErrUnsupported }
func (l *Library) DevicePlatform(cl.Device) (cl.Platform, error)  { return 0, cl.ErrUnsupported }
func (l *Library) ContextDevices(cl.Context) ([]cl.Device, error) { return nil, cl.ErrUnsupported }
func (l *Library) QueueDevice(cl.CommandQueue) (cl.Device, error) { return 0, cl.ErrUnsupported }
func (l *Library) KernelContext(cl.Kernel) (cl.Context, error)    { return 0, cl.ErrUnsupported }
func (l *Library) MemContext(cl.Mem) (cl.Context, error)          { return 0, cl.ErrUnsupported }
func (l *Library) BindForPlatform(cl.Platform, string, any) bool  { return false }
func (l *Library) Bind(string, any) bool                          { return false }
func (l *Library) DeviceIDs(cl.Platform, cl.DeviceType) ([]cl.Device, error) {
	return nil, cl.ErrUnsupported
}

func (l *Library) PlatformInfoString(cl.Platform, cl.PlatformInfo) (string, error) {
	return "", cl.ErrUnsupported
}

func (l *Library) DeviceInfoString(cl.Device, cl.DeviceInfo) (string, error) {
	return "", cl.ErrUnsupported
}
