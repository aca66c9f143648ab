package ext

import (
	"unsafe"

	"github.com/haormj/clext/cl"
)

type (
	fnCreateCommandBufferKHR   func(numQueues uint32, queues *cl.CommandQueue, props *cl.CommandBufferPropertiesKHR, errcodeRet *cl.Status) cl.CommandBuffer
	fnFinalizeCommandBufferKHR func(cb cl.CommandBuffer) cl.Status
	fnRetainCommandBufferKHR   func(cb cl.CommandBuffer) cl.Status
	fnReleaseCommandBufferKHR  func(cb cl.CommandBuffer) cl.Status
	fnEnqueueCommandBufferKHR  func(numQueues uint32, queues *cl.CommandQueue, cb cl.CommandBuffer,
		numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status
	fnCommandBarrierWithWaitListKHR func(cb cl.CommandBuffer, q cl.CommandQueue,
		numSync uint32, syncWait *cl.SyncPointKHR, syncPoint *cl.SyncPointKHR, mutable *cl.MutableCommand) cl.Status
	fnCommandCopyBufferKHR func(cb cl.CommandBuffer, q cl.CommandQueue, src, dst cl.Mem, srcOffset, dstOffset, size uintptr,
		numSync uint32, syncWait *cl.SyncPointKHR, syncPoint *cl.SyncPointKHR, mutable *cl.MutableCommand) cl.Status
	fnCommandCopyBufferRectKHR func(cb cl.CommandBuffer, q cl.CommandQueue, src, dst cl.Mem, srcOrigin, dstOrigin, region *uintptr,
		srcRowPitch, srcSlicePitch, dstRowPitch, dstSlicePitch uintptr,
		numSync uint32, syncWait *cl.SyncPointKHR, syncPoint *cl.SyncPointKHR, mutable *cl.MutableCommand) cl.Status
	fnCommandCopyBufferToImageKHR func(cb cl.CommandBuffer, q cl.CommandQueue, src, dst cl.Mem, srcOffset uintptr, dstOrigin, region *uintptr,
		numSync uint32, syncWait *cl.SyncPointKHR, syncPoint *cl.SyncPointKHR, mutable *cl.MutableCommand) cl.Status
	fnCommandCopyImageKHR func(cb cl.CommandBuffer, q cl.CommandQueue, src, dst cl.Mem, srcOrigin, dstOrigin, region *uintptr,
		numSync uint32, syncWait *cl.SyncPointKHR, syncPoint *cl.SyncPointKHR, mutable *cl.MutableCommand) cl.Status
	fnCommandCopyImageToBufferKHR func(cb cl.CommandBuffer, q cl.CommandQueue, src, dst cl.Mem, srcOrigin, region *uintptr, dstOffset uintptr,
		numSync uint32, syncWait *cl.SyncPointKHR, syncPoint *cl.SyncPointKHR, mutable *cl.MutableCommand) cl.Status
	fnCommandFillBufferKHR func(cb cl.CommandBuffer, q cl.CommandQueue, buf cl.Mem, pattern unsafe.Pointer, patternSize, offset, size uintptr,
		numSync uint32, syncWait *cl.SyncPointKHR, syncPoint *cl.SyncPointKHR, mutable *cl.MutableCommand) cl.Status
	fnCommandFillImageKHR func(cb cl.CommandBuffer, q cl.CommandQueue, img cl.Mem, fillColor unsafe.Pointer, origin, region *uintptr,
		numSync uint32, syncWait *cl.SyncPointKHR, syncPoint *cl.SyncPointKHR, mutable *cl.MutableCommand) cl.Status
	fnCommandNDRangeKernelKHR func(cb cl.CommandBuffer, q cl.CommandQueue, props *cl.NDRangeKernelCommandPropertiesKHR, kernel cl.Kernel,
		workDim uint32, globalOffset, globalSize, localSize *uintptr,
		numSync uint32, syncWait *cl.SyncPointKHR, syncPoint *cl.SyncPointKHR, mutable *cl.MutableCommand) cl.Status
	fnGetCommandBufferInfoKHR func(cb cl.CommandBuffer, param cl.CommandBufferInfoKHR, size uintptr, value unsafe.Pointer, sizeRet *uintptr) cl.Status

	fnUpdateMutableCommandsKHR func(cb cl.CommandBuffer, config *cl.MutableBaseConfigKHR) cl.Status
	fnGetMutableCommandInfoKHR func(cmd cl.MutableCommand, param cl.MutableCommandInfoKHR, size uintptr, value unsafe.Pointer, sizeRet *uintptr) cl.Status
)

const (
	extCommandBuffer = "cl_khr_command_buffer"
	extMutable       = "cl_khr_command_buffer_mutable_dispatch"
)

var (
	procCreateCommandBufferKHR        = registerProc[fnCreateCommandBufferKHR](extCommandBuffer, "clCreateCommandBufferKHR")
	procFinalizeCommandBufferKHR      = registerProc[fnFinalizeCommandBufferKHR](extCommandBuffer, "clFinalizeCommandBufferKHR")
	procRetainCommandBufferKHR        = registerProc[fnRetainCommandBufferKHR](extCommandBuffer, "clRetainCommandBufferKHR")
	procReleaseCommandBufferKHR       = registerProc[fnReleaseCommandBufferKHR](extCommandBuffer, "clReleaseCommandBufferKHR")
	procEnqueueCommandBufferKHR       = registerProc[fnEnqueueCommandBufferKHR](extCommandBuffer, "clEnqueueCommandBufferKHR")
	procCommandBarrierWithWaitListKHR = registerProc[fnCommandBarrierWithWaitListKHR](extCommandBuffer, "clCommandBarrierWithWaitListKHR")
	procCommandCopyBufferKHR          = registerProc[fnCommandCopyBufferKHR](extCommandBuffer, "clCommandCopyBufferKHR")
	procCommandCopyBufferRectKHR      = registerProc[fnCommandCopyBufferRectKHR](extCommandBuffer, "clCommandCopyBufferRectKHR")
	procCommandCopyBufferToImageKHR   = registerProc[fnCommandCopyBufferToImageKHR](extCommandBuffer, "clCommandCopyBufferToImageKHR")
	procCommandCopyImageKHR           = registerProc[fnCommandCopyImageKHR](extCommandBuffer, "clCommandCopyImageKHR")
	procCommandCopyImageToBufferKHR   = registerProc[fnCommandCopyImageToBufferKHR](extCommandBuffer, "clCommandCopyImageToBufferKHR")
	procCommandFillBufferKHR          = registerProc[fnCommandFillBufferKHR](extCommandBuffer, "clCommandFillBufferKHR")
	procCommandFillImageKHR           = registerProc[fnCommandFillImageKHR](extCommandBuffer, "clCommandFillImageKHR")
	procCommandNDRangeKernelKHR       = registerProc[fnCommandNDRangeKernelKHR](extCommandBuffer, "clCommandNDRangeKernelKHR")
	procGetCommandBufferInfoKHR       = registerProc[fnGetCommandBufferInfoKHR](extCommandBuffer, "clGetCommandBufferInfoKHR")

	procUpdateMutableCommandsKHR = registerProc[fnUpdateMutableCommandsKHR](extMutable, "clUpdateMutableCommandsKHR")
	procGetMutableCommandInfoKHR = registerProc[fnGetMutableCommandInfoKHR](extMutable, "clGetMutableCommandInfoKHR")
)

// commandBufferProbe reports whether a table's driver recognises cb.
func commandBufferProbe(cb cl.CommandBuffer) func(*Table) bool {
	return func(t *Table) bool {
		fn, ok := lookup[fnGetCommandBufferInfoKHR](t, procGetCommandBufferInfoKHR)
		if !ok {
			return false
		}
		var refs uint32
		return fn(cb, cl.CommandBufferReferenceCountKHR, unsafe.Sizeof(refs), unsafe.Pointer(&refs), nil) == cl.Success
	}
}

func mutableCommandProbe(cmd cl.MutableCommand) func(*Table) bool {
	return func(t *Table) bool {
		fn, ok := lookup[fnGetMutableCommandInfoKHR](t, procGetMutableCommandInfoKHR)
		if !ok {
			return false
		}
		var cb cl.CommandBuffer
		return fn(cmd, cl.MutableCommandCommandBufferKHR, unsafe.Sizeof(cb), unsafe.Pointer(&cb), nil) == cl.Success
	}
}

// CreateCommandBufferKHR dispatches on the first queue in queues.
func (d *Dispatcher) CreateCommandBufferKHR(numQueues uint32, queues *cl.CommandQueue, props *cl.CommandBufferPropertiesKHR, errcodeRet *cl.Status) cl.CommandBuffer {
	var q cl.CommandQueue
	if numQueues > 0 && queues != nil {
		q = *queues
	}
	return forwardErrcode(d.Table(q), procCreateCommandBufferKHR, errcodeRet, func(fn fnCreateCommandBufferKHR) cl.CommandBuffer {
		return fn(numQueues, queues, props, errcodeRet)
	})
}

func (d *Dispatcher) FinalizeCommandBufferKHR(cb cl.CommandBuffer) cl.Status {
	return forward(d.Table(cb), procFinalizeCommandBufferKHR, cl.InvalidOperation, func(fn fnFinalizeCommandBufferKHR) cl.Status {
		return fn(cb)
	})
}

func (d *Dispatcher) RetainCommandBufferKHR(cb cl.CommandBuffer) cl.Status {
	return forward(d.Table(cb), procRetainCommandBufferKHR, cl.InvalidOperation, func(fn fnRetainCommandBufferKHR) cl.Status {
		return fn(cb)
	})
}

func (d *Dispatcher) ReleaseCommandBufferKHR(cb cl.CommandBuffer) cl.Status {
	return forward(d.Table(cb), procReleaseCommandBufferKHR, cl.InvalidOperation, func(fn fnReleaseCommandBufferKHR) cl.Status {
		return fn(cb)
	})
}

func (d *Dispatcher) EnqueueCommandBufferKHR(numQueues uint32, queues *cl.CommandQueue, cb cl.CommandBuffer,
	numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status {
	return forward(d.Table(cb), procEnqueueCommandBufferKHR, cl.InvalidOperation, func(fn fnEnqueueCommandBufferKHR) cl.Status {
		return fn(numQueues, queues, cb, numEvents, waitList, event)
	})
}

func (d *Dispatcher) CommandBarrierWithWaitListKHR(cb cl.CommandBuffer, q cl.CommandQueue,
	numSync uint32, syncWait *cl.SyncPointKHR, syncPoint *cl.SyncPointKHR, mutable *cl.MutableCommand) cl.Status {
	return forward(d.Table(cb), procCommandBarrierWithWaitListKHR, cl.InvalidOperation, func(fn fnCommandBarrierWithWaitListKHR) cl.Status {
		return fn(cb, q, numSync, syncWait, syncPoint, mutable)
	})
}

func (d *Dispatcher) CommandCopyBufferKHR(cb cl.CommandBuffer, q cl.CommandQueue, src, dst cl.Mem, srcOffset, dstOffset, size uintptr,
	numSync uint32, syncWait *cl.SyncPointKHR, syncPoint *cl.SyncPointKHR, mutable *cl.MutableCommand) cl.Status {
	return forward(d.Table(cb), procCommandCopyBufferKHR, cl.InvalidOperation, func(fn fnCommandCopyBufferKHR) cl.Status {
		return fn(cb, q, src, dst, srcOffset, dstOffset, size, numSync, syncWait, syncPoint, mutable)
	})
}

func (d *Dispatcher) CommandCopyBufferRectKHR(cb cl.CommandBuffer, q cl.CommandQueue, src, dst cl.Mem, srcOrigin, dstOrigin, region *uintptr,
	srcRowPitch, srcSlicePitch, dstRowPitch, dstSlicePitch uintptr,
	numSync uint32, syncWait *cl.SyncPointKHR, syncPoint *cl.SyncPointKHR, mutable *cl.MutableCommand) cl.Status {
	return forward(d.Table(cb), procCommandCopyBufferRectKHR, cl.InvalidOperation, func(fn fnCommandCopyBufferRectKHR) cl.Status {
		return fn(cb, q, src, dst, srcOrigin, dstOrigin, region,
			srcRowPitch, srcSlicePitch, dstRowPitch, dstSlicePitch,
			numSync, syncWait, syncPoint, mutable)
	})
}

func (d *Dispatcher) CommandCopyBufferToImageKHR(cb cl.CommandBuffer, q cl.CommandQueue, src, dst cl.Mem, srcOffset uintptr, dstOrigin, region *uintptr,
	numSync uint32, syncWait *cl.SyncPointKHR, syncPoint *cl.SyncPointKHR, mutable *cl.MutableCommand) cl.Status {
	return forward(d.Table(cb), procCommandCopyBufferToImageKHR, cl.InvalidOperation, func(fn fnCommandCopyBufferToImageKHR) cl.Status {
		return fn(cb, q, src, dst, srcOffset, dstOrigin, region, numSync, syncWait, syncPoint, mutable)
	})
}

func (d *Dispatcher) CommandCopyImageKHR(cb cl.CommandBuffer, q cl.CommandQueue, src, dst cl.Mem, srcOrigin, dstOrigin, region *uintptr,
	numSync uint32, syncWait *cl.SyncPointKHR, syncPoint *cl.SyncPointKHR, mutable *cl.MutableCommand) cl.Status {
	return forward(d.Table(cb), procCommandCopyImageKHR, cl.InvalidOperation, func(fn fnCommandCopyImageKHR) cl.Status {
		return fn(cb, q, src, dst, srcOrigin, dstOrigin, region, numSync, syncWait, syncPoint, mutable)
	})
}

func (d *Dispatcher) CommandCopyImageToBufferKHR(cb cl.CommandBuffer, q cl.CommandQueue, src, dst cl.Mem, srcOrigin, region *uintptr, dstOffset uintptr,
	numSync uint32, syncWait *cl.SyncPointKHR, syncPoint *cl.SyncPointKHR, mutable *cl.MutableCommand) cl.Status {
	return forward(d.Table(cb), procCommandCopyImageToBufferKHR, cl.InvalidOperation, func(fn fnCommandCopyImageToBufferKHR) cl.Status {
		return fn(cb, q, src, dst, srcOrigin, region, dstOffset, numSync, syncWait, syncPoint, mutable)
	})
}

func (d *Dispatcher) CommandFillBufferKHR(cb cl.CommandBuffer, q cl.CommandQueue, buf cl.Mem, pattern unsafe.Pointer, patternSize, offset, size uintptr,
	numSync uint32, syncWait *cl.SyncPointKHR, syncPoint *cl.SyncPointKHR, mutable *cl.MutableCommand) cl.Status {
	return forward(d.Table(cb), procCommandFillBufferKHR, cl.InvalidOperation, func(fn fnCommandFillBufferKHR) cl.Status {
		return fn(cb, q, buf, pattern, patternSize, offset, size, numSync, syncWait, syncPoint, mutable)
	})
}

func (d *Dispatcher) CommandFillImageKHR(cb cl.CommandBuffer, q cl.CommandQueue, img cl.Mem, fillColor unsafe.Pointer, origin, region *uintptr,
	numSync uint32, syncWait *cl.SyncPointKHR, syncPoint *cl.SyncPointKHR, mutable *cl.MutableCommand) cl.Status {
	return forward(d.Table(cb), procCommandFillImageKHR, cl.InvalidOperation, func(fn fnCommandFillImageKHR) cl.Status {
		return fn(cb, q, img, fillColor, origin, region, numSync, syncWait, syncPoint, mutable)
	})
}

func (d *Dispatcher) CommandNDRangeKernelKHR(cb cl.CommandBuffer, q cl.CommandQueue, props *cl.NDRangeKernelCommandPropertiesKHR, kernel cl.Kernel,
	workDim uint32, globalOffset, globalSize, localSize *uintptr,
	numSync uint32, syncWait *cl.SyncPointKHR, syncPoint *cl.SyncPointKHR, mutable *cl.MutableCommand) cl.Status {
	return forward(d.Table(cb), procCommandNDRangeKernelKHR, cl.InvalidOperation, func(fn fnCommandNDRangeKernelKHR) cl.Status {
		return fn(cb, q, props, kernel, workDim, globalOffset, globalSize, localSize, numSync, syncWait, syncPoint, mutable)
	})
}

func (d *Dispatcher) GetCommandBufferInfoKHR(cb cl.CommandBuffer, param cl.CommandBufferInfoKHR, size uintptr, value unsafe.Pointer, sizeRet *uintptr) cl.Status {
	return forward(d.Table(cb), procGetCommandBufferInfoKHR, cl.InvalidOperation, func(fn fnGetCommandBufferInfoKHR) cl.Status {
		return fn(cb, param, size, value, sizeRet)
	})
}

func (d *Dispatcher) UpdateMutableCommandsKHR(cb cl.CommandBuffer, config *cl.MutableBaseConfigKHR) cl.Status {
	return forward(d.Table(cb), procUpdateMutableCommandsKHR, cl.InvalidOperation, func(fn fnUpdateMutableCommandsKHR) cl.Status {
		return fn(cb, config)
	})
}

func (d *Dispatcher) GetMutableCommandInfoKHR(cmd cl.MutableCommand, param cl.MutableCommandInfoKHR, size uintptr, value unsafe.Pointer, sizeRet *uintptr) cl.Status {
	return forward(d.Table(cmd), procGetMutableCommandInfoKHR, cl.InvalidOperation, func(fn fnGetMutableCommandInfoKHR) cl.Status {
		return fn(cmd, param, size, value, sizeRet)
	})
}
