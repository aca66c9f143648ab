//go:build darwin || linux

package native

import (
	"unsafe"

	"github.com/ebitengine/purego"
	"golang.org/x/sys/unix"
	"golang.org/x/xerrors"

	"github.com/haormj/clext/cl"
)

type infoFunc[H ~uintptr, P ~uint32] func(h H, param P, size uintptr, value unsafe.Pointer, sizeRet *uintptr) cl.Status

// Library is an opened OpenCL ICD loader.
type Library struct {
	path   string
	handle uintptr

	getPlatformIDs        func(numEntries uint32, platforms *cl.Platform, numPlatforms *uint32) cl.Status
	getPlatformInfo       infoFunc[cl.Platform, cl.PlatformInfo]
	getDeviceIDs          func(p cl.Platform, t cl.DeviceType, numEntries uint32, devices *cl.Device, numDevices *uint32) cl.Status
	getDeviceInfo         infoFunc[cl.Device, cl.DeviceInfo]
	getContextInfo        infoFunc[cl.Context, cl.ContextInfo]
	getCommandQueueInfo   infoFunc[cl.CommandQueue, cl.QueueInfo]
	getKernelInfo         infoFunc[cl.Kernel, cl.KernelInfo]
	getMemObjectInfo      infoFunc[cl.Mem, cl.MemInfo]
	extensionAddrPlatform func(p cl.Platform, name string) uintptr
	extensionAddr         func(name string) uintptr
}

var (
	_ cl.Runtime   = &Library{}
	_ cl.Inspector = &Library{}
)

// Open loads the ICD loader at path, or DefaultLibrary when path is empty.
func Open(path string) (*Library, error) {
	if path == "" {
		path = DefaultLibrary
	}
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, xerrors.Errorf("native: failed to open %s: %w", path, err)
	}

	l := &Library{path: path, handle: handle}
	required := []struct {
		fptr any
		name string
	}{
		{&l.getPlatformIDs, "clGetPlatformIDs"},
		{&l.getPlatformInfo, "clGetPlatformInfo"},
		{&l.getDeviceIDs, "clGetDeviceIDs"},
		{&l.getDeviceInfo, "clGetDeviceInfo"},
		{&l.getContextInfo, "clGetContextInfo"},
		{&l.getCommandQueueInfo, "clGetCommandQueueInfo"},
		{&l.getKernelInfo, "clGetKernelInfo"},
		{&l.getMemObjectInfo, "clGetMemObjectInfo"},
		{&l.extensionAddr, "clGetExtensionFunctionAddress"},
	}
	for _, fn := range required {
		if err := l.bindSymbol(fn.fptr, fn.name); err != nil {
			purego.Dlclose(handle)
			return nil, err
		}
	}
	// OpenCL 1.1 loaders only have the platform-less lookup; extensionAddrPlatform
	// stays nil there.
	_ = l.bindSymbol(&l.extensionAddrPlatform, "clGetExtensionFunctionAddressForPlatform")

	return l, nil
}

func (l *Library) bindSymbol(fptr any, name string) error {
	addr, err := purego.Dlsym(l.handle, name)
	if err != nil {
		return xerrors.Errorf("native: failed to find %s in %s: %w", name, l.path, err)
	}
	purego.RegisterFunc(fptr, addr)
	return nil
}

func (l *Library) Path() string {
	return l.path
}

// Close unloads the library. Funcs bound from it must not be called
// afterwards.
func (l *Library) Close() error {
	if err := purego.Dlclose(l.handle); err != nil {
		return xerrors.Errorf("native: failed to close %s: %w", l.path, err)
	}
	return nil
}

func (l *Library) PlatformIDs() ([]cl.Platform, error) {
	var n uint32
	if err := l.getPlatformIDs(0, nil, &n).Err(); err != nil {
		return nil, xerrors.Errorf("native: failed to count platforms: %w", err)
	}
	if n == 0 {
		return nil, nil
	}
	platforms := make([]cl.Platform, n)
	if err := l.getPlatformIDs(n, &platforms[0], &n).Err(); err != nil {
		return nil, xerrors.Errorf("native: failed to get platforms: %w", err)
	}
	return platforms[:n], nil
}

func (l *Library) DevicePlatform(d cl.Device) (cl.Platform, error) {
	var p cl.Platform
	if err := l.getDeviceInfo(d, cl.DevicePlatform, unsafe.Sizeof(p), unsafe.Pointer(&p), nil).Err(); err != nil {
		return 0, xerrors.Errorf("native: failed to get device platform: %w", err)
	}
	return p, nil
}

func (l *Library) ContextDevices(c cl.Context) ([]cl.Device, error) {
	var size uintptr
	if err := l.getContextInfo(c, cl.ContextDevices, 0, nil, &size).Err(); err != nil {
		return nil, xerrors.Errorf("native: failed to get context devices: %w", err)
	}
	var d cl.Device
	devices := make([]cl.Device, size/unsafe.Sizeof(d))
	if len(devices) == 0 {
		return nil, nil
	}
	if err := l.getContextInfo(c, cl.ContextDevices, size, unsafe.Pointer(&devices[0]), nil).Err(); err != nil {
		return nil, xerrors.Errorf("native: failed to get context devices: %w", err)
	}
	return devices, nil
}

func (l *Library) QueueDevice(q cl.CommandQueue) (cl.Device, error) {
	var d cl.Device
	if err := l.getCommandQueueInfo(q, cl.QueueDevice, unsafe.Sizeof(d), unsafe.Pointer(&d), nil).Err(); err != nil {
		return 0, xerrors.Errorf("native: failed to get queue device: %w", err)
	}
	return d, nil
}

func (l *Library) KernelContext(k cl.Kernel) (cl.Context, error) {
	var c cl.Context
	if err := l.getKernelInfo(k, cl.KernelContext, unsafe.Sizeof(c), unsafe.Pointer(&c), nil).Err(); err != nil {
		return 0, xerrors.Errorf("native: failed to get kernel context: %w", err)
	}
	return c, nil
}

func (l *Library) MemContext(m cl.Mem) (cl.Context, error) {
	var c cl.Context
	if err := l.getMemObjectInfo(m, cl.MemContext, unsafe.Sizeof(c), unsafe.Pointer(&c), nil).Err(); err != nil {
		return 0, xerrors.Errorf("native: failed to get memory object context: %w", err)
	}
	return c, nil
}

// BindForPlatform resolves name through
// clGetExtensionFunctionAddressForPlatform, falling back to
// clGetExtensionFunctionAddress on loaders that predate it.
func (l *Library) BindForPlatform(p cl.Platform, name string, fn any) bool {
	var addr uintptr
	if l.extensionAddrPlatform != nil {
		addr = l.extensionAddrPlatform(p, name)
	} else {
		addr = l.extensionAddr(name)
	}
	if addr == 0 {
		return false
	}
	purego.RegisterFunc(fn, addr)
	return true
}

func (l *Library) Bind(name string, fn any) bool {
	addr := l.extensionAddr(name)
	if addr == 0 {
		return false
	}
	purego.RegisterFunc(fn, addr)
	return true
}

func (l *Library) PlatformInfoString(p cl.Platform, param cl.PlatformInfo) (string, error) {
	s, err := infoString(l.getPlatformInfo, p, param)
	if err != nil {
		return "", xerrors.Errorf("native: failed to get platform info %#x: %w", uint32(param), err)
	}
	return s, nil
}

func (l *Library) DeviceIDs(p cl.Platform, t cl.DeviceType) ([]cl.Device, error) {
	var n uint32
	if err := l.getDeviceIDs(p, t, 0, nil, &n).Err(); err != nil {
		return nil, xerrors.Errorf("native: failed to count devices: %w", err)
	}
	if n == 0 {
		return nil, xerrors.Errorf("native: failed to count devices: %w", cl.DeviceNotFound)
	}
	devices := make([]cl.Device, n)
	if err := l.getDeviceIDs(p, t, n, &devices[0], &n).Err(); err != nil {
		return nil, xerrors.Errorf("native: failed to get devices: %w", err)
	}
	return devices[:n], nil
}

// DeviceInfoString returns string-valued device properties. DeviceTypeInfo is
// a bitfield and is rendered with cl.DeviceType.String.
func (l *Library) DeviceInfoString(d cl.Device, param cl.DeviceInfo) (string, error) {
	if param == cl.DeviceTypeInfo {
		var t cl.DeviceType
		if err := l.getDeviceInfo(d, param, unsafe.Sizeof(t), unsafe.Pointer(&t), nil).Err(); err != nil {
			return "", xerrors.Errorf("native: failed to get device type: %w", err)
		}
		return t.String(), nil
	}
	s, err := infoString(l.getDeviceInfo, d, param)
	if err != nil {
		return "", xerrors.Errorf("native: failed to get device info %#x: %w", uint32(param), err)
	}
	return s, nil
}

func infoString[H ~uintptr, P ~uint32](get infoFunc[H, P], h H, param P) (string, error) {
	var size uintptr
	if err := get(h, param, 0, nil, &size).Err(); err != nil {
		return "", err
	}
	if size == 0 {
		return "", nil
	}
	buf := make([]byte, size)
	if err := get(h, param, size, unsafe.Pointer(&buf[0]), nil).Err(); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(buf), nil
}
