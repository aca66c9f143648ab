package ext

import (
	"unsafe"

	"github.com/haormj/clext/cl"
)

type (
	fnImportMemoryARM func(ctx cl.Context, flags cl.MemFlags, props *cl.ImportPropertiesARM, memory unsafe.Pointer, size uintptr, errcodeRet *cl.Status) cl.Mem

	fnSVMAllocARM func(ctx cl.Context, flags cl.SVMMemFlagsARM, size uintptr, alignment uint32) unsafe.Pointer
	fnSVMFreeARM  func(ctx cl.Context, ptr unsafe.Pointer)
	// freeFunc is a C callback pointer, or 0.
	fnEnqueueSVMFreeARM func(q cl.CommandQueue, numPtrs uint32, ptrs *unsafe.Pointer, freeFunc uintptr, userData unsafe.Pointer,
		numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status
	fnEnqueueSVMMemcpyARM func(q cl.CommandQueue, blocking cl.Bool, dst, src unsafe.Pointer, size uintptr,
		numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status
	fnEnqueueSVMMemFillARM func(q cl.CommandQueue, ptr, pattern unsafe.Pointer, patternSize, size uintptr,
		numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status
	fnEnqueueSVMMapARM func(q cl.CommandQueue, blocking cl.Bool, flags cl.MapFlags, ptr unsafe.Pointer, size uintptr,
		numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status
	fnEnqueueSVMUnmapARM func(q cl.CommandQueue, ptr unsafe.Pointer,
		numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status
	fnSetKernelArgSVMPointerARM func(kernel cl.Kernel, index uint32, value unsafe.Pointer) cl.Status
	fnSetKernelExecInfoARM      func(kernel cl.Kernel, param cl.KernelExecInfoARM, size uintptr, value unsafe.Pointer) cl.Status
)

const extSVMARM = "cl_arm_shared_virtual_memory"

var (
	procImportMemoryARM = registerProc[fnImportMemoryARM]("cl_arm_import_memory", "clImportMemoryARM")

	procSVMAllocARM               = registerProc[fnSVMAllocARM](extSVMARM, "clSVMAllocARM")
	procSVMFreeARM                = registerProc[fnSVMFreeARM](extSVMARM, "clSVMFreeARM")
	procEnqueueSVMFreeARM         = registerProc[fnEnqueueSVMFreeARM](extSVMARM, "clEnqueueSVMFreeARM")
	procEnqueueSVMMemcpyARM       = registerProc[fnEnqueueSVMMemcpyARM](extSVMARM, "clEnqueueSVMMemcpyARM")
	procEnqueueSVMMemFillARM      = registerProc[fnEnqueueSVMMemFillARM](extSVMARM, "clEnqueueSVMMemFillARM")
	procEnqueueSVMMapARM          = registerProc[fnEnqueueSVMMapARM](extSVMARM, "clEnqueueSVMMapARM")
	procEnqueueSVMUnmapARM        = registerProc[fnEnqueueSVMUnmapARM](extSVMARM, "clEnqueueSVMUnmapARM")
	procSetKernelArgSVMPointerARM = registerProc[fnSetKernelArgSVMPointerARM](extSVMARM, "clSetKernelArgSVMPointerARM")
	procSetKernelExecInfoARM      = registerProc[fnSetKernelExecInfoARM](extSVMARM, "clSetKernelExecInfoARM")
)

func (d *Dispatcher) ImportMemoryARM(ctx cl.Context, flags cl.MemFlags, props *cl.ImportPropertiesARM, memory unsafe.Pointer, size uintptr, errcodeRet *cl.Status) cl.Mem {
	return forwardErrcode(d.Table(ctx), procImportMemoryARM, errcodeRet, func(fn fnImportMemoryARM) cl.Mem {
		return fn(ctx, flags, props, memory, size, errcodeRet)
	})
}

// SVMAllocARM returns nil when the extension is unavailable. There is no
// errcode_ret to report why.
func (d *Dispatcher) SVMAllocARM(ctx cl.Context, flags cl.SVMMemFlagsARM, size uintptr, alignment uint32) unsafe.Pointer {
	return forward(d.Table(ctx), procSVMAllocARM, unsafe.Pointer(nil), func(fn fnSVMAllocARM) unsafe.Pointer {
		return fn(ctx, flags, size, alignment)
	})
}

func (d *Dispatcher) SVMFreeARM(ctx cl.Context, ptr unsafe.Pointer) {
	fn, ok := lookup[fnSVMFreeARM](d.Table(ctx), procSVMFreeARM)
	if !ok {
		return
	}
	fn(ctx, ptr)
}

func (d *Dispatcher) EnqueueSVMFreeARM(q cl.CommandQueue, numPtrs uint32, ptrs *unsafe.Pointer, freeFunc uintptr, userData unsafe.Pointer,
	numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status {
	return forward(d.Table(q), procEnqueueSVMFreeARM, cl.InvalidOperation, func(fn fnEnqueueSVMFreeARM) cl.Status {
		return fn(q, numPtrs, ptrs, freeFunc, userData, numEvents, waitList, event)
	})
}

func (d *Dispatcher) EnqueueSVMMemcpyARM(q cl.CommandQueue, blocking cl.Bool, dst, src unsafe.Pointer, size uintptr,
	numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status {
	return forward(d.Table(q), procEnqueueSVMMemcpyARM, cl.InvalidOperation, func(fn fnEnqueueSVMMemcpyARM) cl.Status {
		return fn(q, blocking, dst, src, size, numEvents, waitList, event)
	})
}

func (d *Dispatcher) EnqueueSVMMemFillARM(q cl.CommandQueue, ptr, pattern unsafe.Pointer, patternSize, size uintptr,
	numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status {
	return forward(d.Table(q), procEnqueueSVMMemFillARM, cl.InvalidOperation, func(fn fnEnqueueSVMMemFillARM) cl.Status {
		return fn(q, ptr, pattern, patternSize, size, numEvents, waitList, event)
	})
}

func (d *Dispatcher) EnqueueSVMMapARM(q cl.CommandQueue, blocking cl.Bool, flags cl.MapFlags, ptr unsafe.Pointer, size uintptr,
	numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status {
	return forward(d.Table(q), procEnqueueSVMMapARM, cl.InvalidOperation, func(fn fnEnqueueSVMMapARM) cl.Status {
		return fn(q, blocking, flags, ptr, size, numEvents, waitList, event)
	})
}

func (d *Dispatcher) EnqueueSVMUnmapARM(q cl.CommandQueue, ptr unsafe.Pointer,
	numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status {
	return forward(d.Table(q), procEnqueueSVMUnmapARM, cl.InvalidOperation, func(fn fnEnqueueSVMUnmapARM) cl.Status {
		return fn(q, ptr, numEvents, waitList, event)
	})
}

func (d *Dispatcher) SetKernelArgSVMPointerARM(kernel cl.Kernel, index uint32, value unsafe.Pointer) cl.Status {
	return forward(d.Table(kernel), procSetKernelArgSVMPointerARM, cl.InvalidOperation, func(fn fnSetKernelArgSVMPointerARM) cl.Status {
		return fn(kernel, index, value)
	})
}

func (d *Dispatcher) SetKernelExecInfoARM(kernel cl.Kernel, param cl.KernelExecInfoARM, size uintptr, value unsafe.Pointer) cl.Status {
	return forward(d.Table(kernel), procSetKernelExecInfoARM, cl.InvalidOperation, func(fn fnSetKernelExecInfoARM) cl.Status {
		return fn(kernel, param, size, value)
	})
}
