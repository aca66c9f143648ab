//go:build clext_d3d11

package ext

import (
	"unsafe"

	"github.com/haormj/clext/cl"
)

type (
	fnGetDeviceIDsFromD3D11KHR func(platform cl.Platform, source cl.D3D11DeviceSourceKHR, object unsafe.Pointer, set cl.D3D11DeviceSetKHR,
		numEntries uint32, devices *cl.Device, numDevices *uint32) cl.Status
	fnCreateFromD3D11BufferKHR      func(ctx cl.Context, flags cl.MemFlags, resource unsafe.Pointer, errcodeRet *cl.Status) cl.Mem
	fnCreateFromD3D11Texture2DKHR   func(ctx cl.Context, flags cl.MemFlags, resource unsafe.Pointer, subresource uint32, errcodeRet *cl.Status) cl.Mem
	fnCreateFromD3D11Texture3DKHR   func(ctx cl.Context, flags cl.MemFlags, resource unsafe.Pointer, subresource uint32, errcodeRet *cl.Status) cl.Mem
	fnEnqueueAcquireD3D11ObjectsKHR func(q cl.CommandQueue, numObjects uint32, mems *cl.Mem,
		numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status
	fnEnqueueReleaseD3D11ObjectsKHR func(q cl.CommandQueue, numObjects uint32, mems *cl.Mem,
		numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status
	fnGetSupportedD3D11TextureFormatsINTEL func(ctx cl.Context, flags cl.MemFlags, imageType cl.MemObjectType, plane uint32,
		numEntries uint32, formats *cl.DXGIFormat, numFormats *uint32) cl.Status
)

const extD3D11Sharing = "cl_khr_d3d11_sharing"

var (
	procGetDeviceIDsFromD3D11KHR             = registerProc[fnGetDeviceIDsFromD3D11KHR](extD3D11Sharing, "clGetDeviceIDsFromD3D11KHR")
	procCreateFromD3D11BufferKHR             = registerProc[fnCreateFromD3D11BufferKHR](extD3D11Sharing, "clCreateFromD3D11BufferKHR")
	procCreateFromD3D11Texture2DKHR          = registerProc[fnCreateFromD3D11Texture2DKHR](extD3D11Sharing, "clCreateFromD3D11Texture2DKHR")
	procCreateFromD3D11Texture3DKHR          = registerProc[fnCreateFromD3D11Texture3DKHR](extD3D11Sharing, "clCreateFromD3D11Texture3DKHR")
	procEnqueueAcquireD3D11ObjectsKHR        = registerProc[fnEnqueueAcquireD3D11ObjectsKHR](extD3D11Sharing, "clEnqueueAcquireD3D11ObjectsKHR")
	procEnqueueReleaseD3D11ObjectsKHR        = registerProc[fnEnqueueReleaseD3D11ObjectsKHR](extD3D11Sharing, "clEnqueueReleaseD3D11ObjectsKHR")
	procGetSupportedD3D11TextureFormatsINTEL = registerProc[fnGetSupportedD3D11TextureFormatsINTEL]("cl_intel_sharing_format_query_d3d11", "clGetSupportedD3D11TextureFormatsINTEL")
)

func (d *Dispatcher) GetDeviceIDsFromD3D11KHR(platform cl.Platform, source cl.D3D11DeviceSourceKHR, object unsafe.Pointer, set cl.D3D11DeviceSetKHR,
	numEntries uint32, devices *cl.Device, numDevices *uint32) cl.Status {
	return forward(d.Table(platform), procGetDeviceIDsFromD3D11KHR, cl.InvalidOperation, func(fn fnGetDeviceIDsFromD3D11KHR) cl.Status {
		return fn(platform, source, object, set, numEntries, devices, numDevices)
	})
}

func (d *Dispatcher) CreateFromD3D11BufferKHR(ctx cl.Context, flags cl.MemFlags, resource unsafe.Pointer, errcodeRet *cl.Status) cl.Mem {
	return forwardErrcode(d.Table(ctx), procCreateFromD3D11BufferKHR, errcodeRet, func(fn fnCreateFromD3D11BufferKHR) cl.Mem {
		return fn(ctx, flags, resource, errcodeRet)
	})
}

func (d *Dispatcher) CreateFromD3D11Texture2DKHR(ctx cl.Context, flags cl.MemFlags, resource unsafe.Pointer, subresource uint32, errcodeRet *cl.Status) cl.Mem {
	return forwardErrcode(d.Table(ctx), procCreateFromD3D11Texture2DKHR, errcodeRet, func(fn fnCreateFromD3D11Texture2DKHR) cl.Mem {
		return fn(ctx, flags, resource, subresource, errcodeRet)
	})
}

func (d *Dispatcher) CreateFromD3D11Texture3DKHR(ctx cl.Context, flags cl.MemFlags, resource unsafe.Pointer, subresource uint32, errcodeRet *cl.Status) cl.Mem {
	return forwardErrcode(d.Table(ctx), procCreateFromD3D11Texture3DKHR, errcodeRet, func(fn fnCreateFromD3D11Texture3DKHR) cl.Mem {
		return fn(ctx, flags, resource, subresource, errcodeRet)
	})
}

func (d *Dispatcher) EnqueueAcquireD3D11ObjectsKHR(q cl.CommandQueue, numObjects uint32, mems *cl.Mem,
	numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status {
	return forward(d.Table(q), procEnqueueAcquireD3D11ObjectsKHR, cl.InvalidOperation, func(fn fnEnqueueAcquireD3D11ObjectsKHR) cl.Status {
		return fn(q, numObjects, mems, numEvents, waitList, event)
	})
}

func (d *Dispatcher) EnqueueReleaseD3D11ObjectsKHR(q cl.CommandQueue, numObjects uint32, mems *cl.Mem,
	numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status {
	return forward(d.Table(q), procEnqueueReleaseD3D11ObjectsKHR, cl.InvalidOperation, func(fn fnEnqueueReleaseD3D11ObjectsKHR) cl.Status {
		return fn(q, numObjects, mems, numEvents, waitList, event)
	})
}

func (d *Dispatcher) GetSupportedD3D11TextureFormatsINTEL(ctx cl.Context, flags cl.MemFlags, imageType cl.MemObjectType, plane uint32,
	numEntries uint32, formats *cl.DXGIFormat, numFormats *uint32) cl.Status {
	return forward(d.Table(ctx), procGetSupportedD3D11TextureFormatsINTEL, cl.InvalidOperation, func(fn fnGetSupportedD3D11TextureFormatsINTEL) cl.Status {
		return fn(ctx, flags, imageType, plane, numEntries, formats, numFormats)
	})
}
