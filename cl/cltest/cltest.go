// Package cltest provides an in-memory cl.Runtime for tests.
//
// Objects are created with the Add* methods and wired to each other the way a
// driver would: a memory object knows its context, a context its devices, a
// device its platform. Extension procs are ordinary Go funcs registered per
// platform under their C entry point name.
package cltest

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/haormj/clext/cl"
)

type platform struct {
	id         cl.Platform
	name       string
	vendor     string
	version    string
	extensions []string
	procs      map[string]any
}

type device struct {
	platform cl.Platform
	name     string
	typ      cl.DeviceType
}

// Runtime is a fake OpenCL ICD. The zero value is not usable; call New.
type Runtime struct {
	mu sync.Mutex

	next      uintptr
	platforms []*platform
	devices   map[cl.Device]*device
	contexts  map[cl.Context][]cl.Device
	queues    map[cl.CommandQueue]cl.Device
	kernels   map[cl.Kernel]cl.Context
	mems      map[cl.Mem]cl.Context
	common    map[string]any

	enumerateErr error
	enumerations int
	binds        map[string]int
}

var (
	_ cl.Runtime   = &Runtime{}
	_ cl.Inspector = &Runtime{}
)

func New() *Runtime {
	return &Runtime{
		next:     0x1000,
		devices:  make(map[cl.Device]*device),
		contexts: make(map[cl.Context][]cl.Device),
		queues:   make(map[cl.CommandQueue]cl.Device),
		kernels:  make(map[cl.Kernel]cl.Context),
		mems:     make(map[cl.Mem]cl.Context),
		common:   make(map[string]any),
		binds:    make(map[string]int),
	}
}

// NewHandle returns a fresh non-zero handle value, for objects such as
// semaphores that the fake does not track.
func (r *Runtime) NewHandle() uintptr {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.newHandle()
}

func (r *Runtime) newHandle() uintptr {
	r.next += 0x10
	return r.next
}

// AddPlatform registers a platform whose extension symbols are procs.
func (r *Runtime) AddPlatform(name string, procs map[string]any) cl.Platform {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := &platform{
		id:      cl.Platform(r.newHandle()),
		name:    name,
		vendor:  name + " vendor",
		version: "OpenCL 3.0 " + name,
		procs:   make(map[string]any, len(procs)),
	}
	for k, v := range procs {
		p.procs[k] = v
	}
	r.platforms = append(r.platforms, p)
	return p.id
}

// SetProc adds or replaces one extension symbol of platform p.
func (r *Runtime) SetProc(p cl.Platform, name string, fn any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lookupPlatform(p).procs[name] = fn
}

// SetExtensions sets the platform extension string reported by the
// Inspector.
func (r *Runtime) SetExtensions(p cl.Platform, exts ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lookupPlatform(p).extensions = exts
}

// SetCommon registers a platform-independent symbol.
func (r *Runtime) SetCommon(name string, fn any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.common[name] = fn
}

func (r *Runtime) AddDevice(p cl.Platform, name string, typ cl.DeviceType) cl.Device {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lookupPlatform(p)
	d := cl.Device(r.newHandle())
	r.devices[d] = &device{platform: p, name: name, typ: typ}
	return d
}

func (r *Runtime) AddContext(devices ...cl.Device) cl.Context {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := cl.Context(r.newHandle())
	r.contexts[c] = append([]cl.Device(nil), devices...)
	return c
}

func (r *Runtime) AddQueue(d cl.Device) cl.CommandQueue {
	r.mu.Lock()
	defer r.mu.Unlock()
	q := cl.CommandQueue(r.newHandle())
	r.queues[q] = d
	return q
}

func (r *Runtime) AddKernel(c cl.Context) cl.Kernel {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := cl.Kernel(r.newHandle())
	r.kernels[k] = c
	return k
}

func (r *Runtime) AddMem(c cl.Context) cl.Mem {
	r.mu.Lock()
	defer r.mu.Unlock()
	m := cl.Mem(r.newHandle())
	r.mems[m] = c
	return m
}

// FailEnumeration makes PlatformIDs return err until called again with nil.
func (r *Runtime) FailEnumeration(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enumerateErr = err
}

// Enumerations counts PlatformIDs calls.
func (r *Runtime) Enumerations() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.enumerations
}

// Binds counts successful and failed bind attempts for a symbol name across
// all platforms.
func (r *Runtime) Binds(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.binds[name]
}

func (r *Runtime) lookupPlatform(p cl.Platform) *platform {
	for _, pl := range r.platforms {
		if pl.id == p {
			return pl
		}
	}
	panic(fmt.Sprintf("cltest: unknown platform %#x", uintptr(p)))
}

func (r *Runtime) PlatformIDs() ([]cl.Platform, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enumerations++
	if r.enumerateErr != nil {
		return nil, r.enumerateErr
	}
	ids := make([]cl.Platform, 0, len(r.platforms))
	for _, p := range r.platforms {
		ids = append(ids, p.id)
	}
	return ids, nil
}

func (r *Runtime) DevicePlatform(d cl.Device) (cl.Platform, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dev, ok := r.devices[d]
	if !ok {
		return 0, cl.InvalidDevice
	}
	return dev.platform, nil
}

func (r *Runtime) ContextDevices(c cl.Context) ([]cl.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	devices, ok := r.contexts[c]
	if !ok {
		return nil, cl.InvalidContext
	}
	return append([]cl.Device(nil), devices...), nil
}

func (r *Runtime) QueueDevice(q cl.CommandQueue) (cl.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.queues[q]
	if !ok {
		return 0, cl.InvalidCommandQueue
	}
	return d, nil
}

func (r *Runtime) KernelContext(k cl.Kernel) (cl.Context, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.kernels[k]
	if !ok {
		return 0, cl.InvalidKernel
	}
	return c, nil
}

func (r *Runtime) MemContext(m cl.Mem) (cl.Context, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.mems[m]
	if !ok {
		return 0, cl.InvalidMemObject
	}
	return c, nil
}

func (r *Runtime) BindForPlatform(p cl.Platform, name string, fn any) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.binds[name]++
	for _, pl := range r.platforms {
		if pl.id == p {
			return bind(pl.procs[name], fn)
		}
	}
	return false
}

func (r *Runtime) Bind(name string, fn any) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.binds[name]++
	return bind(r.common[name], fn)
}

func bind(impl, fn any) bool {
	if impl == nil {
		return false
	}
	dst := reflect.ValueOf(fn).Elem()
	src := reflect.ValueOf(impl)
	switch {
	case src.Type().AssignableTo(dst.Type()):
		dst.Set(src)
	case src.Type().ConvertibleTo(dst.Type()):
		dst.Set(src.Convert(dst.Type()))
	default:
		panic(fmt.Sprintf("cltest: proc of type %s cannot bind to %s", src.Type(), dst.Type()))
	}
	return true
}

func (r *Runtime) PlatformInfoString(p cl.Platform, param cl.PlatformInfo) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, pl := range r.platforms {
		if pl.id != p {
			continue
		}
		switch param {
		case cl.PlatformProfile:
			return "FULL_PROFILE", nil
		case cl.PlatformVersion:
			return pl.version, nil
		case cl.PlatformName:
			return pl.name, nil
		case cl.PlatformVendor:
			return pl.vendor, nil
		case cl.PlatformExtensions:
			return strings.Join(pl.extensions, " "), nil
		}
		return "", cl.InvalidValue
	}
	return "", cl.InvalidPlatform
}

func (r *Runtime) DeviceIDs(p cl.Platform, t cl.DeviceType) ([]cl.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []cl.Device
	for id, d := range r.devices {
		if d.platform == p && d.typ&t != 0 {
			out = append(out, id)
		}
	}
	if len(out) == 0 {
		return nil, cl.DeviceNotFound
	}
	// handles grow monotonically, so this is creation order
	slices.Sort(out)
	return out, nil
}

func (r *Runtime) DeviceInfoString(d cl.Device, param cl.DeviceInfo) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dev, ok := r.devices[d]
	if !ok {
		return "", cl.InvalidDevice
	}
	switch param {
	case cl.DeviceName:
		return dev.name, nil
	case cl.DeviceTypeInfo:
		return dev.typ.String(), nil
	case cl.DeviceVendor:
		return r.lookupPlatform(dev.platform).vendor, nil
	case cl.DeviceVersion:
		return r.lookupPlatform(dev.platform).version, nil
	}
	return "", cl.InvalidValue
}
