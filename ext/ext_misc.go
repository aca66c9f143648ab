package ext

import (
	"unsafe"

	"github.com/haormj/clext/cl"
)

type (
	fnReleaseDeviceEXT            func(device cl.Device) cl.Status
	fnRetainDeviceEXT             func(device cl.Device) cl.Status
	fnCreateSubDevicesEXT         func(device cl.Device, props *cl.DevicePartitionPropertyEXT, numEntries uint32, out *cl.Device, numDevices *uint32) cl.Status
	fnGetImageRequirementsInfoEXT func(ctx cl.Context, props *cl.MemProperties, flags cl.MemFlags, format *cl.ImageFormat, desc *cl.ImageDesc,
		param cl.ImageRequirementsInfoEXT, size uintptr, value unsafe.Pointer, sizeRet *uintptr) cl.Status
	fnEnqueueMigrateMemObjectEXT func(q cl.CommandQueue, numMems uint32, mems *cl.Mem, flags cl.MemMigrationFlagsEXT,
		numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status
)

const extDeviceFission = "cl_ext_device_fission"

var (
	procReleaseDeviceEXT            = registerProc[fnReleaseDeviceEXT](extDeviceFission, "clReleaseDeviceEXT")
	procRetainDeviceEXT             = registerProc[fnRetainDeviceEXT](extDeviceFission, "clRetainDeviceEXT")
	procCreateSubDevicesEXT         = registerProc[fnCreateSubDevicesEXT](extDeviceFission, "clCreateSubDevicesEXT")
	procGetImageRequirementsInfoEXT = registerProc[fnGetImageRequirementsInfoEXT]("cl_ext_image_requirements_info", "clGetImageRequirementsInfoEXT")
	procEnqueueMigrateMemObjectEXT  = registerProc[fnEnqueueMigrateMemObjectEXT]("cl_ext_migrate_memobject", "clEnqueueMigrateMemObjectEXT")
)

func (d *Dispatcher) ReleaseDeviceEXT(device cl.Device) cl.Status {
	return forward(d.Table(device), procReleaseDeviceEXT, cl.InvalidOperation, func(fn fnReleaseDeviceEXT) cl.Status {
		return fn(device)
	})
}

func (d *Dispatcher) RetainDeviceEXT(device cl.Device) cl.Status {
	return forward(d.Table(device), procRetainDeviceEXT, cl.InvalidOperation, func(fn fnRetainDeviceEXT) cl.Status {
		return fn(device)
	})
}

func (d *Dispatcher) CreateSubDevicesEXT(device cl.Device, props *cl.DevicePartitionPropertyEXT, numEntries uint32, out *cl.Device, numDevices *uint32) cl.Status {
	return forward(d.Table(device), procCreateSubDevicesEXT, cl.InvalidOperation, func(fn fnCreateSubDevicesEXT) cl.Status {
		return fn(device, props, numEntries, out, numDevices)
	})
}

func (d *Dispatcher) GetImageRequirementsInfoEXT(ctx cl.Context, props *cl.MemProperties, flags cl.MemFlags, format *cl.ImageFormat, desc *cl.ImageDesc,
	param cl.ImageRequirementsInfoEXT, size uintptr, value unsafe.Pointer, sizeRet *uintptr) cl.Status {
	return forward(d.Table(ctx), procGetImageRequirementsInfoEXT, cl.InvalidOperation, func(fn fnGetImageRequirementsInfoEXT) cl.Status {
		return fn(ctx, props, flags, format, desc, param, size, value, sizeRet)
	})
}

func (d *Dispatcher) EnqueueMigrateMemObjectEXT(q cl.CommandQueue, numMems uint32, mems *cl.Mem, flags cl.MemMigrationFlagsEXT,
	numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status {
	return forward(d.Table(q), procEnqueueMigrateMemObjectEXT, cl.InvalidOperation, func(fn fnEnqueueMigrateMemObjectEXT) cl.Status {
		return fn(q, numMems, mems, flags, numEvents, waitList, event)
	})
}
