//go:build clext_va_api

package ext

import (
	"unsafe"

	"github.com/haormj/clext/cl"
)

type (
	fnGetDeviceIDsFromVA_APIMediaAdapterINTEL func(platform cl.Platform, source cl.VAAPIDeviceSourceINTEL, adapter unsafe.Pointer,
		set cl.VAAPIDeviceSetINTEL, numEntries uint32, devices *cl.Device, numDevices *uint32) cl.Status
	fnCreateFromVA_APIMediaSurfaceINTEL      func(ctx cl.Context, flags cl.MemFlags, surface *cl.VASurfaceID, plane uint32, errcodeRet *cl.Status) cl.Mem
	fnEnqueueAcquireVA_APIMediaSurfacesINTEL func(q cl.CommandQueue, numObjects uint32, mems *cl.Mem,
		numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status
	fnEnqueueReleaseVA_APIMediaSurfacesINTEL func(q cl.CommandQueue, numObjects uint32, mems *cl.Mem,
		numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status
	fnGetSupportedVA_APIMediaSurfaceFormatsINTEL func(ctx cl.Context, flags cl.MemFlags, imageType cl.MemObjectType, plane uint32,
		numEntries uint32, formats *cl.VAImageFormat, numFormats *uint32) cl.Status
)

const extVAAPI = "cl_intel_va_api_media_sharing"

var (
	procGetDeviceIDsFromVA_APIMediaAdapterINTEL    = registerProc[fnGetDeviceIDsFromVA_APIMediaAdapterINTEL](extVAAPI, "clGetDeviceIDsFromVA_APIMediaAdapterINTEL")
	procCreateFromVA_APIMediaSurfaceINTEL          = registerProc[fnCreateFromVA_APIMediaSurfaceINTEL](extVAAPI, "clCreateFromVA_APIMediaSurfaceINTEL")
	procEnqueueAcquireVA_APIMediaSurfacesINTEL     = registerProc[fnEnqueueAcquireVA_APIMediaSurfacesINTEL](extVAAPI, "clEnqueueAcquireVA_APIMediaSurfacesINTEL")
	procEnqueueReleaseVA_APIMediaSurfacesINTEL     = registerProc[fnEnqueueReleaseVA_APIMediaSurfacesINTEL](extVAAPI, "clEnqueueReleaseVA_APIMediaSurfacesINTEL")
	procGetSupportedVA_APIMediaSurfaceFormatsINTEL = registerProc[fnGetSupportedVA_APIMediaSurfaceFormatsINTEL]("cl_intel_sharing_format_query_va_api", "clGetSupportedVA_APIMediaSurfaceFormatsINTEL")
)

func (d *Dispatcher) GetDeviceIDsFromVA_APIMediaAdapterINTEL(platform cl.Platform, source cl.VAAPIDeviceSourceINTEL, adapter unsafe.Pointer,
	set cl.VAAPIDeviceSetINTEL, numEntries uint32, devices *cl.Device, numDevices *uint32) cl.Status {
	return forward(d.Table(platform), procGetDeviceIDsFromVA_APIMediaAdapterINTEL, cl.InvalidOperation, func(fn fnGetDeviceIDsFromVA_APIMediaAdapterINTEL) cl.Status {
		return fn(platform, source, adapter, set, numEntries, devices, numDevices)
	})
}

func (d *Dispatcher) CreateFromVA_APIMediaSurfaceINTEL(ctx cl.Context, flags cl.MemFlags, surface *cl.VASurfaceID, plane uint32, errcodeRet *cl.Status) cl.Mem {
	return forwardErrcode(d.Table(ctx), procCreateFromVA_APIMediaSurfaceINTEL, errcodeRet, func(fn fnCreateFromVA_APIMediaSurfaceINTEL) cl.Mem {
		return fn(ctx, flags, surface, plane, errcodeRet)
	})
}

func (d *Dispatcher) EnqueueAcquireVA_APIMediaSurfacesINTEL(q cl.CommandQueue, numObjects uint32, mems *cl.Mem,
	numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status {
	return forward(d.Table(q), procEnqueueAcquireVA_APIMediaSurfacesINTEL, cl.InvalidOperation, func(fn fnEnqueueAcquireVA_APIMediaSurfacesINTEL) cl.Status {
		return fn(q, numObjects, mems, numEvents, waitList, event)
	})
}

func (d *Dispatcher) EnqueueReleaseVA_APIMediaSurfacesINTEL(q cl.CommandQueue, numObjects uint32, mems *cl.Mem,
	numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status {
	return forward(d.Table(q), procEnqueueReleaseVA_APIMediaSurfacesINTEL, cl.InvalidOperation, func(fn fnEnqueueReleaseVA_APIMediaSurfacesINTEL) cl.Status {
		return fn(q, numObjects, mems, numEvents, waitList, event)
	})
}

func (d *Dispatcher) GetSupportedVA_APIMediaSurfaceFormatsINTEL(ctx cl.Context, flags cl.MemFlags, imageType cl.MemObjectType, plane uint32,
	numEntries uint32, formats *cl.VAImageFormat, numFormats *uint32) cl.Status {
	return forward(d.Table(ctx), procGetSupportedVA_APIMediaSurfaceFormatsINTEL, cl.InvalidOperation, func(fn fnGetSupportedVA_APIMediaSurfaceFormatsINTEL) cl.Status {
		return fn(ctx, flags, imageType, plane, numEntries, formats, numFormats)
	})
}
