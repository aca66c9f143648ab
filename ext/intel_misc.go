package ext

import (
	"unsafe"

	"github.com/haormj/clext/cl"
)

type (
	fnCreateBufferWithPropertiesINTEL func(ctx cl.Context, props *cl.MemPropertiesINTEL, flags cl.MemFlags, size uintptr, hostPtr unsafe.Pointer, errcodeRet *cl.Status) cl.Mem
	fnEnqueueReadHostPipeINTEL        func(q cl.CommandQueue, program cl.Program, pipeSymbol string, blocking cl.Bool, ptr unsafe.Pointer, size uintptr,
		numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status
	fnEnqueueWriteHostPipeINTEL func(q cl.CommandQueue, program cl.Program, pipeSymbol string, blocking cl.Bool, ptr unsafe.Pointer, size uintptr,
		numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status
)

const extHostPipe = "cl_intel_program_scope_host_pipe"

var (
	procCreateBufferWithPropertiesINTEL = registerProc[fnCreateBufferWithPropertiesINTEL]("cl_intel_create_buffer_with_properties", "clCreateBufferWithPropertiesINTEL")
	procEnqueueReadHostPipeINTEL        = registerProc[fnEnqueueReadHostPipeINTEL](extHostPipe, "clEnqueueReadHostPipeINTEL")
	procEnqueueWriteHostPipeINTEL       = registerProc[fnEnqueueWriteHostPipeINTEL](extHostPipe, "clEnqueueWriteHostPipeINTEL")
)

func (d *Dispatcher) CreateBufferWithPropertiesINTEL(ctx cl.Context, props *cl.MemPropertiesINTEL, flags cl.MemFlags, size uintptr, hostPtr unsafe.Pointer, errcodeRet *cl.Status) cl.Mem {
	return forwardErrcode(d.Table(ctx), procCreateBufferWithPropertiesINTEL, errcodeRet, func(fn fnCreateBufferWithPropertiesINTEL) cl.Mem {
		return fn(ctx, props, flags, size, hostPtr, errcodeRet)
	})
}

// EnqueueReadHostPipeINTEL passes pipeSymbol to the driver as a
// NUL-terminated C string.
func (d *Dispatcher) EnqueueReadHostPipeINTEL(q cl.CommandQueue, program cl.Program, pipeSymbol string, blocking cl.Bool, ptr unsafe.Pointer, size uintptr,
	numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status {
	return forward(d.Table(q), procEnqueueReadHostPipeINTEL, cl.InvalidOperation, func(fn fnEnqueueReadHostPipeINTEL) cl.Status {
		return fn(q, program, pipeSymbol, blocking, ptr, size, numEvents, waitList, event)
	})
}

func (d *Dispatcher) EnqueueWriteHostPipeINTEL(q cl.CommandQueue, program cl.Program, pipeSymbol string, blocking cl.Bool, ptr unsafe.Pointer, size uintptr,
	numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status {
	return forward(d.Table(q), procEnqueueWriteHostPipeINTEL, cl.InvalidOperation, func(fn fnEnqueueWriteHostPipeINTEL) cl.Status {
		return fn(q, program, pipeSymbol, blocking, ptr, size, numEvents, waitList, event)
	})
}
