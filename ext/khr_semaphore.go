package ext

import (
	"unsafe"

	"github.com/haormj/clext/cl"
)

type (
	fnCreateSemaphoreWithPropertiesKHR func(ctx cl.Context, props *cl.SemaphorePropertiesKHR, errcodeRet *cl.Status) cl.Semaphore
	fnEnqueueWaitSemaphoresKHR         func(q cl.CommandQueue, numSemaphores uint32, semaphores *cl.Semaphore, payloads *cl.SemaphorePayloadKHR,
		numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status
	fnEnqueueSignalSemaphoresKHR func(q cl.CommandQueue, numSemaphores uint32, semaphores *cl.Semaphore, payloads *cl.SemaphorePayloadKHR,
		numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status
	fnGetSemaphoreInfoKHR func(sema cl.Semaphore, param cl.SemaphoreInfoKHR, size uintptr, value unsafe.Pointer, sizeRet *uintptr) cl.Status
	fnReleaseSemaphoreKHR func(sema cl.Semaphore) cl.Status
	fnRetainSemaphoreKHR  func(sema cl.Semaphore) cl.Status

	fnGetSemaphoreHandleForTypeKHR func(sema cl.Semaphore, device cl.Device, handleType cl.ExternalSemaphoreHandleTypeKHR,
		handleSize uintptr, handle unsafe.Pointer, handleSizeRet *uintptr) cl.Status

	fnEnqueueAcquireExternalMemObjectsKHR func(q cl.CommandQueue, numMems uint32, mems *cl.Mem,
		numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status
	fnEnqueueReleaseExternalMemObjectsKHR func(q cl.CommandQueue, numMems uint32, mems *cl.Mem,
		numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status
)

const (
	extSemaphore         = "cl_khr_semaphore"
	extExternalSemaphore = "cl_khr_external_semaphore"
	extExternalMemory    = "cl_khr_external_memory"
)

var (
	procCreateSemaphoreWithPropertiesKHR = registerProc[fnCreateSemaphoreWithPropertiesKHR](extSemaphore, "clCreateSemaphoreWithPropertiesKHR")
	procEnqueueWaitSemaphoresKHR         = registerProc[fnEnqueueWaitSemaphoresKHR](extSemaphore, "clEnqueueWaitSemaphoresKHR")
	procEnqueueSignalSemaphoresKHR       = registerProc[fnEnqueueSignalSemaphoresKHR](extSemaphore, "clEnqueueSignalSemaphoresKHR")
	procGetSemaphoreInfoKHR              = registerProc[fnGetSemaphoreInfoKHR](extSemaphore, "clGetSemaphoreInfoKHR")
	procReleaseSemaphoreKHR              = registerProc[fnReleaseSemaphoreKHR](extSemaphore, "clReleaseSemaphoreKHR")
	procRetainSemaphoreKHR               = registerProc[fnRetainSemaphoreKHR](extSemaphore, "clRetainSemaphoreKHR")

	procGetSemaphoreHandleForTypeKHR = registerProc[fnGetSemaphoreHandleForTypeKHR](extExternalSemaphore, "clGetSemaphoreHandleForTypeKHR")

	procEnqueueAcquireExternalMemObjectsKHR = registerProc[fnEnqueueAcquireExternalMemObjectsKHR](extExternalMemory, "clEnqueueAcquireExternalMemObjectsKHR")
	procEnqueueReleaseExternalMemObjectsKHR = registerProc[fnEnqueueReleaseExternalMemObjectsKHR](extExternalMemory, "clEnqueueReleaseExternalMemObjectsKHR")
)

func semaphoreProbe(sema cl.Semaphore) func(*Table) bool {
	return func(t *Table) bool {
		fn, ok := lookup[fnGetSemaphoreInfoKHR](t, procGetSemaphoreInfoKHR)
		if !ok {
			return false
		}
		var refs uint32
		return fn(sema, cl.SemaphoreReferenceCountKHR, unsafe.Sizeof(refs), unsafe.Pointer(&refs), nil) == cl.Success
	}
}

func (d *Dispatcher) CreateSemaphoreWithPropertiesKHR(ctx cl.Context, props *cl.SemaphorePropertiesKHR, errcodeRet *cl.Status) cl.Semaphore {
	return forwardErrcode(d.Table(ctx), procCreateSemaphoreWithPropertiesKHR, errcodeRet, func(fn fnCreateSemaphoreWithPropertiesKHR) cl.Semaphore {
		return fn(ctx, props, errcodeRet)
	})
}

func (d *Dispatcher) EnqueueWaitSemaphoresKHR(q cl.CommandQueue, numSemaphores uint32, semaphores *cl.Semaphore, payloads *cl.SemaphorePayloadKHR,
	numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status {
	return forward(d.Table(q), procEnqueueWaitSemaphoresKHR, cl.InvalidOperation, func(fn fnEnqueueWaitSemaphoresKHR) cl.Status {
		return fn(q, numSemaphores, semaphores, payloads, numEvents, waitList, event)
	})
}

func (d *Dispatcher) EnqueueSignalSemaphoresKHR(q cl.CommandQueue, numSemaphores uint32, semaphores *cl.Semaphore, payloads *cl.SemaphorePayloadKHR,
	numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status {
	return forward(d.Table(q), procEnqueueSignalSemaphoresKHR, cl.InvalidOperation, func(fn fnEnqueueSignalSemaphoresKHR) cl.Status {
		return fn(q, numSemaphores, semaphores, payloads, numEvents, waitList, event)
	})
}

func (d *Dispatcher) GetSemaphoreInfoKHR(sema cl.Semaphore, param cl.SemaphoreInfoKHR, size uintptr, value unsafe.Pointer, sizeRet *uintptr) cl.Status {
	return forward(d.Table(sema), procGetSemaphoreInfoKHR, cl.InvalidOperation, func(fn fnGetSemaphoreInfoKHR) cl.Status {
		return fn(sema, param, size, value, sizeRet)
	})
}

func (d *Dispatcher) ReleaseSemaphoreKHR(sema cl.Semaphore) cl.Status {
	return forward(d.Table(sema), procReleaseSemaphoreKHR, cl.InvalidOperation, func(fn fnReleaseSemaphoreKHR) cl.Status {
		return fn(sema)
	})
}

func (d *Dispatcher) RetainSemaphoreKHR(sema cl.Semaphore) cl.Status {
	return forward(d.Table(sema), procRetainSemaphoreKHR, cl.InvalidOperation, func(fn fnRetainSemaphoreKHR) cl.Status {
		return fn(sema)
	})
}

func (d *Dispatcher) GetSemaphoreHandleForTypeKHR(sema cl.Semaphore, device cl.Device, handleType cl.ExternalSemaphoreHandleTypeKHR,
	handleSize uintptr, handle unsafe.Pointer, handleSizeRet *uintptr) cl.Status {
	return forward(d.Table(sema), procGetSemaphoreHandleForTypeKHR, cl.InvalidOperation, func(fn fnGetSemaphoreHandleForTypeKHR) cl.Status {
		return fn(sema, device, handleType, handleSize, handle, handleSizeRet)
	})
}

func (d *Dispatcher) EnqueueAcquireExternalMemObjectsKHR(q cl.CommandQueue, numMems uint32, mems *cl.Mem,
	numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status {
	return forward(d.Table(q), procEnqueueAcquireExternalMemObjectsKHR, cl.InvalidOperation, func(fn fnEnqueueAcquireExternalMemObjectsKHR) cl.Status {
		return fn(q, numMems, mems, numEvents, waitList, event)
	})
}

func (d *Dispatcher) EnqueueReleaseExternalMemObjectsKHR(q cl.CommandQueue, numMems uint32, mems *cl.Mem,
	numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status {
	return forward(d.Table(q), procEnqueueReleaseExternalMemObjectsKHR, cl.InvalidOperation, func(fn fnEnqueueReleaseExternalMemObjectsKHR) cl.Status {
		return fn(q, numMems, mems, numEvents, waitList, event)
	})
}
