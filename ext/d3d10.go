//go:build clext_d3d10

package ext

import (
	"unsafe"

	"github.com/haormj/clext/cl"
)

type (
	fnGetDeviceIDsFromD3D10KHR func(platform cl.Platform, source cl.D3D10DeviceSourceKHR, object unsafe.Pointer, set cl.D3D10DeviceSetKHR,
		numEntries uint32, devices *cl.Device, numDevices *uint32) cl.Status
	fnCreateFromD3D10BufferKHR      func(ctx cl.Context, flags cl.MemFlags, resource unsafe.Pointer, errcodeRet *cl.Status) cl.Mem
	fnCreateFromD3D10Texture2DKHR   func(ctx cl.Context, flags cl.MemFlags, resource unsafe.Pointer, subresource uint32, errcodeRet *cl.Status) cl.Mem
	fnCreateFromD3D10Texture3DKHR   func(ctx cl.Context, flags cl.MemFlags, resource unsafe.Pointer, subresource uint32, errcodeRet *cl.Status) cl.Mem
	fnEnqueueAcquireD3D10ObjectsKHR func(q cl.CommandQueue, numObjects uint32, mems *cl.Mem,
		numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status
	fnEnqueueReleaseD3D10ObjectsKHR func(q cl.CommandQueue, numObjects uint32, mems *cl.Mem,
		numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status
	fnGetSupportedD3D10TextureFormatsINTEL func(ctx cl.Context, flags cl.MemFlags, imageType cl.MemObjectType,
		numEntries uint32, formats *cl.DXGIFormat, numFormats *uint32) cl.Status
)

const extD3D10Sharing = "cl_khr_d3d10_sharing"

var (
	procGetDeviceIDsFromD3D10KHR             = registerProc[fnGetDeviceIDsFromD3D10KHR](extD3D10Sharing, "clGetDeviceIDsFromD3D10KHR")
	procCreateFromD3D10BufferKHR             = registerProc[fnCreateFromD3D10BufferKHR](extD3D10Sharing, "clCreateFromD3D10BufferKHR")
	procCreateFromD3D10Texture2DKHR          = registerProc[fnCreateFromD3D10Texture2DKHR](extD3D10Sharing, "clCreateFromD3D10Texture2DKHR")
	procCreateFromD3D10Texture3DKHR          = registerProc[fnCreateFromD3D10Texture3DKHR](extD3D10Sharing, "clCreateFromD3D10Texture3DKHR")
	procEnqueueAcquireD3D10ObjectsKHR        = registerProc[fnEnqueueAcquireD3D10ObjectsKHR](extD3D10Sharing, "clEnqueueAcquireD3D10ObjectsKHR")
	procEnqueueReleaseD3D10ObjectsKHR        = registerProc[fnEnqueueReleaseD3D10ObjectsKHR](extD3D10Sharing, "clEnqueueReleaseD3D10ObjectsKHR")
	procGetSupportedD3D10TextureFormatsINTEL = registerProc[fnGetSupportedD3D10TextureFormatsINTEL]("cl_intel_sharing_format_query_d3d10", "clGetSupportedD3D10TextureFormatsINTEL")
)

func (d *Dispatcher) GetDeviceIDsFromD3D10KHR(platform cl.Platform, source cl.D3D10DeviceSourceKHR, object unsafe.Pointer, set cl.D3D10DeviceSetKHR,
	numEntries uint32, devices *cl.Device, numDevices *uint32) cl.Status {
	return forward(d.Table(platform), procGetDeviceIDsFromD3D10KHR, cl.InvalidOperation, func(fn fnGetDeviceIDsFromD3D10KHR) cl.Status {
		return fn(platform, source, object, set, numEntries, devices, numDevices)
	})
}

func (d *Dispatcher) CreateFromD3D10BufferKHR(ctx cl.Context, flags cl.MemFlags, resource unsafe.Pointer, errcodeRet *cl.Status) cl.Mem {
	return forwardErrcode(d.Table(ctx), procCreateFromD3D10BufferKHR, errcodeRet, func(fn fnCreateFromD3D10BufferKHR) cl.Mem {
		return fn(ctx, flags, resource, errcodeRet)
	})
}

func (d *Dispatcher) CreateFromD3D10Texture2DKHR(ctx cl.Context, flags cl.MemFlags, resource unsafe.Pointer, subresource uint32, errcodeRet *cl.Status) cl.Mem {
	return forwardErrcode(d.Table(ctx), procCreateFromD3D10Texture2DKHR, errcodeRet, func(fn fnCreateFromD3D10Texture2DKHR) cl.Mem {
		return fn(ctx, flags, resource, subresource, errcodeRet)
	})
}

func (d *Dispatcher) CreateFromD3D10Texture3DKHR(ctx cl.Context, flags cl.MemFlags, resource unsafe.Pointer, subresource uint32, errcodeRet *cl.Status) cl.Mem {
	return forwardErrcode(d.Table(ctx), procCreateFromD3D10Texture3DKHR, errcodeRet, func(fn fnCreateFromD3D10Texture3DKHR) cl.Mem {
		return fn(ctx, flags, resource, subresource, errcodeRet)
	})
}

func (d *Dispatcher) EnqueueAcquireD3D10ObjectsKHR(q cl.CommandQueue, numObjects uint32, mems *cl.Mem,
	numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status {
	return forward(d.Table(q), procEnqueueAcquireD3D10ObjectsKHR, cl.InvalidOperation, func(fn fnEnqueueAcquireD3D10ObjectsKHR) cl.Status {
		return fn(q, numObjects, mems, numEvents, waitList, event)
	})
}

func (d *Dispatcher) EnqueueReleaseD3D10ObjectsKHR(q cl.CommandQueue, numObjects uint32, mems *cl.Mem,
	numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status {
	return forward(d.Table(q), procEnqueueReleaseD3D10ObjectsKHR, cl.InvalidOperation, func(fn fnEnqueueReleaseD3D10ObjectsKHR) cl.Status {
		return fn(q, numObjects, mems, numEvents, waitList, event)
	})
}

func (d *Dispatcher) GetSupportedD3D10TextureFormatsINTEL(ctx cl.Context, flags cl.MemFlags, imageType cl.MemObjectType,
	numEntries uint32, formats *cl.DXGIFormat, numFormats *uint32) cl.Status {
	return forward(d.Table(ctx), procGetSupportedD3D10TextureFormatsINTEL, cl.InvalidOperation, func(fn fnGetSupportedD3D10TextureFormatsINTEL) cl.Status {
		return fn(ctx, flags, imageType, numEntries, formats, numFormats)
	})
}
