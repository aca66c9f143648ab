/*
Package cl holds the OpenCL types shared by the extension loader: opaque
handles, status codes, info parameter names and the Runtime seam through
which the loader talks to an ICD.

Handles are plain uintptr values carrying the driver's pointer. They are not
owned by this package; nothing here retains or releases them.
*/
package cl

import "errors"

var ErrUnsupported = errors.New("cl: unsupported")

// Object is any OpenCL handle that can identify a platform, directly or by
// probing. The set of kinds is closed.
type Object interface {
	Handle() uintptr
	IsNil() bool
	object()
}

type (
	Platform       uintptr
	Device         uintptr
	Context        uintptr
	CommandQueue   uintptr
	Kernel         uintptr
	Mem            uintptr
	Program        uintptr
	Event          uintptr
	Semaphore      uintptr // cl_semaphore_khr
	CommandBuffer  uintptr // cl_command_buffer_khr
	MutableCommand uintptr // cl_mutable_command_khr
	Accelerator    uintptr // cl_accelerator_intel
)

func (h Platform) Handle() uintptr       { return uintptr(h) }
func (h Device) Handle() uintptr         { return uintptr(h) }
func (h Context) Handle() uintptr        { return uintptr(h) }
func (h CommandQueue) Handle() uintptr   { return uintptr(h) }
func (h Kernel) Handle() uintptr         { return uintptr(h) }
func (h Mem) Handle() uintptr            { return uintptr(h) }
func (h Semaphore) Handle() uintptr      { return uintptr(h) }
func (h CommandBuffer) Handle() uintptr  { return uintptr(h) }
func (h MutableCommand) Handle() uintptr { return uintptr(h) }
func (h Accelerator) Handle() uintptr    { return uintptr(h) }

func (h Platform) IsNil() bool       { return h == 0 }
func (h Device) IsNil() bool         { return h == 0 }
func (h Context) IsNil() bool        { return h == 0 }
func (h CommandQueue) IsNil() bool   { return h == 0 }
func (h Kernel) IsNil() bool         { return h == 0 }
func (h Mem) IsNil() bool            { return h == 0 }
func (h Semaphore) IsNil() bool      { return h == 0 }
func (h CommandBuffer) IsNil() bool  { return h == 0 }
func (h MutableCommand) IsNil() bool { return h == 0 }
func (h Accelerator) IsNil() bool    { return h == 0 }

func (Platform) object()       {}
func (Device) object()         {}
func (Context) object()        {}
func (CommandQueue) object()   {}
func (Kernel) object()         {}
func (Mem) object()            {}
func (Semaphore) object()      {}
func (CommandBuffer) object()  {}
func (MutableCommand) object() {}
func (Accelerator) object()    {}
