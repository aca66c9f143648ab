//go:build clext_dx9

package ext

import (
	"unsafe"

	"github.com/haormj/clext/cl"
)

type (
	fnGetDeviceIDsFromDX9MediaAdapterKHR func(platform cl.Platform, numAdapters uint32, adapterTypes *cl.DX9MediaAdapterTypeKHR,
		adapters unsafe.Pointer, set cl.DX9MediaAdapterSetKHR, numEntries uint32, devices *cl.Device, numDevices *uint32) cl.Status
	fnCreateFromDX9MediaSurfaceKHR func(ctx cl.Context, flags cl.MemFlags, adapterType cl.DX9MediaAdapterTypeKHR,
		surfaceInfo unsafe.Pointer, plane uint32, errcodeRet *cl.Status) cl.Mem
	fnEnqueueAcquireDX9MediaSurfacesKHR func(q cl.CommandQueue, numObjects uint32, mems *cl.Mem,
		numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status
	fnEnqueueReleaseDX9MediaSurfacesKHR func(q cl.CommandQueue, numObjects uint32, mems *cl.Mem,
		numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status

	fnGetDeviceIDsFromDX9INTEL func(platform cl.Platform, source cl.DX9DeviceSourceINTEL, object unsafe.Pointer, set cl.DX9DeviceSetINTEL,
		numEntries uint32, devices *cl.Device, numDevices *uint32) cl.Status
	fnCreateFromDX9MediaSurfaceINTEL func(ctx cl.Context, flags cl.MemFlags, resource unsafe.Pointer, sharedHandle unsafe.Pointer,
		plane uint32, errcodeRet *cl.Status) cl.Mem
	fnEnqueueAcquireDX9ObjectsINTEL func(q cl.CommandQueue, numObjects uint32, mems *cl.Mem,
		numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status
	fnEnqueueReleaseDX9ObjectsINTEL func(q cl.CommandQueue, numObjects uint32, mems *cl.Mem,
		numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status

	fnGetSupportedDX9MediaSurfaceFormatsINTEL func(ctx cl.Context, flags cl.MemFlags, imageType cl.MemObjectType, plane uint32,
		numEntries uint32, formats *cl.D3DFormat, numFormats *uint32) cl.Status
)

const (
	extDX9MediaKHR   = "cl_khr_dx9_media_sharing"
	extDX9MediaINTEL = "cl_intel_dx9_media_sharing"
)

var (
	procGetDeviceIDsFromDX9MediaAdapterKHR = registerProc[fnGetDeviceIDsFromDX9MediaAdapterKHR](extDX9MediaKHR, "clGetDeviceIDsFromDX9MediaAdapterKHR")
	procCreateFromDX9MediaSurfaceKHR       = registerProc[fnCreateFromDX9MediaSurfaceKHR](extDX9MediaKHR, "clCreateFromDX9MediaSurfaceKHR")
	procEnqueueAcquireDX9MediaSurfacesKHR  = registerProc[fnEnqueueAcquireDX9MediaSurfacesKHR](extDX9MediaKHR, "clEnqueueAcquireDX9MediaSurfacesKHR")
	procEnqueueReleaseDX9MediaSurfacesKHR  = registerProc[fnEnqueueReleaseDX9MediaSurfacesKHR](extDX9MediaKHR, "clEnqueueReleaseDX9MediaSurfacesKHR")

	procGetDeviceIDsFromDX9INTEL       = registerProc[fnGetDeviceIDsFromDX9INTEL](extDX9MediaINTEL, "clGetDeviceIDsFromDX9INTEL")
	procCreateFromDX9MediaSurfaceINTEL = registerProc[fnCreateFromDX9MediaSurfaceINTEL](extDX9MediaINTEL, "clCreateFromDX9MediaSurfaceINTEL")
	procEnqueueAcquireDX9ObjectsINTEL  = registerProc[fnEnqueueAcquireDX9ObjectsINTEL](extDX9MediaINTEL, "clEnqueueAcquireDX9ObjectsINTEL")
	procEnqueueReleaseDX9ObjectsINTEL  = registerProc[fnEnqueueReleaseDX9ObjectsINTEL](extDX9MediaINTEL, "clEnqueueReleaseDX9ObjectsINTEL")

	procGetSupportedDX9MediaSurfaceFormatsINTEL = registerProc[fnGetSupportedDX9MediaSurfaceFormatsINTEL]("cl_intel_sharing_format_query_dx9", "clGetSupportedDX9MediaSurfaceFormatsINTEL")
)

func (d *Dispatcher) GetDeviceIDsFromDX9MediaAdapterKHR(platform cl.Platform, numAdapters uint32, adapterTypes *cl.DX9MediaAdapterTypeKHR,
	adapters unsafe.Pointer, set cl.DX9MediaAdapterSetKHR, numEntries uint32, devices *cl.Device, numDevices *uint32) cl.Status {
	return forward(d.Table(platform), procGetDeviceIDsFromDX9MediaAdapterKHR, cl.InvalidOperation, func(fn fnGetDeviceIDsFromDX9MediaAdapterKHR) cl.Status {
		return fn(platform, numAdapters, adapterTypes, adapters, set, numEntries, devices, numDevices)
	})
}

func (d *Dispatcher) CreateFromDX9MediaSurfaceKHR(ctx cl.Context, flags cl.MemFlags, adapterType cl.DX9MediaAdapterTypeKHR,
	surfaceInfo unsafe.Pointer, plane uint32, errcodeRet *cl.Status) cl.Mem {
	return forwardErrcode(d.Table(ctx), procCreateFromDX9MediaSurfaceKHR, errcodeRet, func(fn fnCreateFromDX9MediaSurfaceKHR) cl.Mem {
		return fn(ctx, flags, adapterType, surfaceInfo, plane, errcodeRet)
	})
}

func (d *Dispatcher) EnqueueAcquireDX9MediaSurfacesKHR(q cl.CommandQueue, numObjects uint32, mems *cl.Mem,
	numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status {
	return forward(d.Table(q), procEnqueueAcquireDX9MediaSurfacesKHR, cl.InvalidOperation, func(fn fnEnqueueAcquireDX9MediaSurfacesKHR) cl.Status {
		return fn(q, numObjects, mems, numEvents, waitList, event)
	})
}

func (d *Dispatcher) EnqueueReleaseDX9MediaSurfacesKHR(q cl.CommandQueue, numObjects uint32, mems *cl.Mem,
	numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status {
	return forward(d.Table(q), procEnqueueReleaseDX9MediaSurfacesKHR, cl.InvalidOperation, func(fn fnEnqueueReleaseDX9MediaSurfacesKHR) cl.Status {
		return fn(q, numObjects, mems, numEvents, waitList, event)
	})
}

func (d *Dispatcher) GetDeviceIDsFromDX9INTEL(platform cl.Platform, source cl.DX9DeviceSourceINTEL, object unsafe.Pointer, set cl.DX9DeviceSetINTEL,
	numEntries uint32, devices *cl.Device, numDevices *uint32) cl.Status {
	return forward(d.Table(platform), procGetDeviceIDsFromDX9INTEL, cl.InvalidOperation, func(fn fnGetDeviceIDsFromDX9INTEL) cl.Status {
		return fn(platform, source, object, set, numEntries, devices, numDevices)
	})
}

func (d *Dispatcher) CreateFromDX9MediaSurfaceINTEL(ctx cl.Context, flags cl.MemFlags, resource unsafe.Pointer, sharedHandle unsafe.Pointer,
	plane uint32, errcodeRet *cl.Status) cl.Mem {
	return forwardErrcode(d.Table(ctx), procCreateFromDX9MediaSurfaceINTEL, errcodeRet, func(fn fnCreateFromDX9MediaSurfaceINTEL) cl.Mem {
		return fn(ctx, flags, resource, sharedHandle, plane, errcodeRet)
	})
}

func (d *Dispatcher) EnqueueAcquireDX9ObjectsINTEL(q cl.CommandQueue, numObjects uint32, mems *cl.Mem,
	numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status {
	return forward(d.Table(q), procEnqueueAcquireDX9ObjectsINTEL, cl.InvalidOperation, func(fn fnEnqueueAcquireDX9ObjectsINTEL) cl.Status {
		return fn(q, numObjects, mems, numEvents, waitList, event)
	})
}

func (d *Dispatcher) EnqueueReleaseDX9ObjectsINTEL(q cl.CommandQueue, numObjects uint32, mems *cl.Mem,
	numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status {
	return forward(d.Table(q), procEnqueueReleaseDX9ObjectsINTEL, cl.InvalidOperation, func(fn fnEnqueueReleaseDX9ObjectsINTEL) cl.Status {
		return fn(q, numObjects, mems, numEvents, waitList, event)
	})
}

func (d *Dispatcher) GetSupportedDX9MediaSurfaceFormatsINTEL(ctx cl.Context, flags cl.MemFlags, imageType cl.MemObjectType, plane uint32,
	numEntries uint32, formats *cl.D3DFormat, numFormats *uint32) cl.Status {
	return forward(d.Table(ctx), procGetSupportedDX9MediaSurfaceFormatsINTEL, cl.InvalidOperation, func(fn fnGetSupportedDX9MediaSurfaceFormatsINTEL) cl.Status {
		return fn(ctx, flags, imageType, plane, numEntries, formats, numFormats)
	})
}
