package ext

import (
	"unsafe"

	"github.com/haormj/clext/cl"
)

type (
	fnHostMemAllocINTEL           func(ctx cl.Context, props *cl.MemPropertiesINTEL, size uintptr, alignment uint32, errcodeRet *cl.Status) unsafe.Pointer
	fnDeviceMemAllocINTEL         func(ctx cl.Context, device cl.Device, props *cl.MemPropertiesINTEL, size uintptr, alignment uint32, errcodeRet *cl.Status) unsafe.Pointer
	fnSharedMemAllocINTEL         func(ctx cl.Context, device cl.Device, props *cl.MemPropertiesINTEL, size uintptr, alignment uint32, errcodeRet *cl.Status) unsafe.Pointer
	fnMemFreeINTEL                func(ctx cl.Context, ptr unsafe.Pointer) cl.Status
	fnMemBlockingFreeINTEL        func(ctx cl.Context, ptr unsafe.Pointer) cl.Status
	fnGetMemAllocInfoINTEL        func(ctx cl.Context, ptr unsafe.Pointer, param cl.MemInfoINTEL, size uintptr, value unsafe.Pointer, sizeRet *uintptr) cl.Status
	fnSetKernelArgMemPointerINTEL func(kernel cl.Kernel, index uint32, value unsafe.Pointer) cl.Status
	fnEnqueueMemFillINTEL         func(q cl.CommandQueue, dst, pattern unsafe.Pointer, patternSize, size uintptr,
		numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status
	fnEnqueueMemcpyINTEL func(q cl.CommandQueue, blocking cl.Bool, dst, src unsafe.Pointer, size uintptr,
		numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status
	fnEnqueueMemAdviseINTEL func(q cl.CommandQueue, ptr unsafe.Pointer, size uintptr, advice cl.MemAdviceINTEL,
		numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status
	fnEnqueueMigrateMemINTEL func(q cl.CommandQueue, ptr unsafe.Pointer, size uintptr, flags cl.MemMigrationFlags,
		numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status
	fnEnqueueMemsetINTEL func(q cl.CommandQueue, dst unsafe.Pointer, value int32, size uintptr,
		numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status
)

const extUSM = "cl_intel_unified_shared_memory"

var (
	procHostMemAllocINTEL           = registerProc[fnHostMemAllocINTEL](extUSM, "clHostMemAllocINTEL")
	procDeviceMemAllocINTEL         = registerProc[fnDeviceMemAllocINTEL](extUSM, "clDeviceMemAllocINTEL")
	procSharedMemAllocINTEL         = registerProc[fnSharedMemAllocINTEL](extUSM, "clSharedMemAllocINTEL")
	procMemFreeINTEL                = registerProc[fnMemFreeINTEL](extUSM, "clMemFreeINTEL")
	procMemBlockingFreeINTEL        = registerProc[fnMemBlockingFreeINTEL](extUSM, "clMemBlockingFreeINTEL")
	procGetMemAllocInfoINTEL        = registerProc[fnGetMemAllocInfoINTEL](extUSM, "clGetMemAllocInfoINTEL")
	procSetKernelArgMemPointerINTEL = registerProc[fnSetKernelArgMemPointerINTEL](extUSM, "clSetKernelArgMemPointerINTEL")
	procEnqueueMemFillINTEL         = registerProc[fnEnqueueMemFillINTEL](extUSM, "clEnqueueMemFillINTEL")
	procEnqueueMemcpyINTEL          = registerProc[fnEnqueueMemcpyINTEL](extUSM, "clEnqueueMemcpyINTEL")
	procEnqueueMemAdviseINTEL       = registerProc[fnEnqueueMemAdviseINTEL](extUSM, "clEnqueueMemAdviseINTEL")
	procEnqueueMigrateMemINTEL      = registerProc[fnEnqueueMigrateMemINTEL](extUSM, "clEnqueueMigrateMemINTEL")
	procEnqueueMemsetINTEL          = registerProc[fnEnqueueMemsetINTEL](extUSM, "clEnqueueMemsetINTEL")
)

func (d *Dispatcher) HostMemAllocINTEL(ctx cl.Context, props *cl.MemPropertiesINTEL, size uintptr, alignment uint32, errcodeRet *cl.Status) unsafe.Pointer {
	return forwardErrcode(d.Table(ctx), procHostMemAllocINTEL, errcodeRet, func(fn fnHostMemAllocINTEL) unsafe.Pointer {
		return fn(ctx, props, size, alignment, errcodeRet)
	})
}

func (d *Dispatcher) DeviceMemAllocINTEL(ctx cl.Context, device cl.Device, props *cl.MemPropertiesINTEL, size uintptr, alignment uint32, errcodeRet *cl.Status) unsafe.Pointer {
	return forwardErrcode(d.Table(ctx), procDeviceMemAllocINTEL, errcodeRet, func(fn fnDeviceMemAllocINTEL) unsafe.Pointer {
		return fn(ctx, device, props, size, alignment, errcodeRet)
	})
}

func (d *Dispatcher) SharedMemAllocINTEL(ctx cl.Context, device cl.Device, props *cl.MemPropertiesINTEL, size uintptr, alignment uint32, errcodeRet *cl.Status) unsafe.Pointer {
	return forwardErrcode(d.Table(ctx), procSharedMemAllocINTEL, errcodeRet, func(fn fnSharedMemAllocINTEL) unsafe.Pointer {
		return fn(ctx, device, props, size, alignment, errcodeRet)
	})
}

func (d *Dispatcher) MemFreeINTEL(ctx cl.Context, ptr unsafe.Pointer) cl.Status {
	return forward(d.Table(ctx), procMemFreeINTEL, cl.InvalidOperation, func(fn fnMemFreeINTEL) cl.Status {
		return fn(ctx, ptr)
	})
}

func (d *Dispatcher) MemBlockingFreeINTEL(ctx cl.Context, ptr unsafe.Pointer) cl.Status {
	return forward(d.Table(ctx), procMemBlockingFreeINTEL, cl.InvalidOperation, func(fn fnMemBlockingFreeINTEL) cl.Status {
		return fn(ctx, ptr)
	})
}

func (d *Dispatcher) GetMemAllocInfoINTEL(ctx cl.Context, ptr unsafe.Pointer, param cl.MemInfoINTEL, size uintptr, value unsafe.Pointer, sizeRet *uintptr) cl.Status {
	return forward(d.Table(ctx), procGetMemAllocInfoINTEL, cl.InvalidOperation, func(fn fnGetMemAllocInfoINTEL) cl.Status {
		return fn(ctx, ptr, param, size, value, sizeRet)
	})
}

func (d *Dispatcher) SetKernelArgMemPointerINTEL(kernel cl.Kernel, index uint32, value unsafe.Pointer) cl.Status {
	return forward(d.Table(kernel), procSetKernelArgMemPointerINTEL, cl.InvalidOperation, func(fn fnSetKernelArgMemPointerINTEL) cl.Status {
		return fn(kernel, index, value)
	})
}

func (d *Dispatcher) EnqueueMemFillINTEL(q cl.CommandQueue, dst, pattern unsafe.Pointer, patternSize, size uintptr,
	numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status {
	return forward(d.Table(q), procEnqueueMemFillINTEL, cl.InvalidOperation, func(fn fnEnqueueMemFillINTEL) cl.Status {
		return fn(q, dst, pattern, patternSize, size, numEvents, waitList, event)
	})
}

func (d *Dispatcher) EnqueueMemcpyINTEL(q cl.CommandQueue, blocking cl.Bool, dst, src unsafe.Pointer, size uintptr,
	numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status {
	return forward(d.Table(q), procEnqueueMemcpyINTEL, cl.InvalidOperation, func(fn fnEnqueueMemcpyINTEL) cl.Status {
		return fn(q, blocking, dst, src, size, numEvents, waitList, event)
	})
}

func (d *Dispatcher) EnqueueMemAdviseINTEL(q cl.CommandQueue, ptr unsafe.Pointer, size uintptr, advice cl.MemAdviceINTEL,
	numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status {
	return forward(d.Table(q), procEnqueueMemAdviseINTEL, cl.InvalidOperation, func(fn fnEnqueueMemAdviseINTEL) cl.Status {
		return fn(q, ptr, size, advice, numEvents, waitList, event)
	})
}

func (d *Dispatcher) EnqueueMigrateMemINTEL(q cl.CommandQueue, ptr unsafe.Pointer, size uintptr, flags cl.MemMigrationFlags,
	numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status {
	return forward(d.Table(q), procEnqueueMigrateMemINTEL, cl.InvalidOperation, func(fn fnEnqueueMigrateMemINTEL) cl.Status {
		return fn(q, ptr, size, flags, numEvents, waitList, event)
	})
}

func (d *Dispatcher) EnqueueMemsetINTEL(q cl.CommandQueue, dst unsafe.Pointer, value int32, size uintptr,
	numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status {
	return forward(d.Table(q), procEnqueueMemsetINTEL, cl.InvalidOperation, func(fn fnEnqueueMemsetINTEL) cl.Status {
		return fn(q, dst, value, size, numEvents, waitList, event)
	})
}
