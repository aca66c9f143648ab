package ext

import (
	"unsafe"

	"github.com/haormj/clext/cl"
)

type (
	fnCreateCommandQueueWithPropertiesKHR func(ctx cl.Context, device cl.Device, props *cl.QueuePropertiesKHR, errcodeRet *cl.Status) cl.CommandQueue
	fnCreateProgramWithILKHR              func(ctx cl.Context, il unsafe.Pointer, length uintptr, errcodeRet *cl.Status) cl.Program
	fnGetKernelSubGroupInfoKHR            func(kernel cl.Kernel, device cl.Device, param cl.KernelSubGroupInfo,
		inputSize uintptr, input unsafe.Pointer, size uintptr, value unsafe.Pointer, sizeRet *uintptr) cl.Status
	fnGetKernelSuggestedLocalWorkSizeKHR func(q cl.CommandQueue, kernel cl.Kernel, workDim uint32,
		globalOffset, globalSize, suggestedLocalSize *uintptr) cl.Status
	fnTerminateContextKHR func(ctx cl.Context) cl.Status
)

var (
	procCreateCommandQueueWithPropertiesKHR = registerProc[fnCreateCommandQueueWithPropertiesKHR]("cl_khr_create_command_queue", "clCreateCommandQueueWithPropertiesKHR")
	procCreateProgramWithILKHR              = registerProc[fnCreateProgramWithILKHR]("cl_khr_il_program", "clCreateProgramWithILKHR")
	procGetKernelSubGroupInfoKHR            = registerProc[fnGetKernelSubGroupInfoKHR]("cl_khr_subgroups", "clGetKernelSubGroupInfoKHR")
	procGetKernelSuggestedLocalWorkSizeKHR  = registerProc[fnGetKernelSuggestedLocalWorkSizeKHR]("cl_khr_suggested_local_work_size", "clGetKernelSuggestedLocalWorkSizeKHR")
	procTerminateContextKHR                 = registerProc[fnTerminateContextKHR]("cl_khr_terminate_context", "clTerminateContextKHR")
)

func (d *Dispatcher) CreateCommandQueueWithPropertiesKHR(ctx cl.Context, device cl.Device, props *cl.QueuePropertiesKHR, errcodeRet *cl.Status) cl.CommandQueue {
	return forwardErrcode(d.Table(ctx), procCreateCommandQueueWithPropertiesKHR, errcodeRet, func(fn fnCreateCommandQueueWithPropertiesKHR) cl.CommandQueue {
		return fn(ctx, device, props, errcodeRet)
	})
}

func (d *Dispatcher) CreateProgramWithILKHR(ctx cl.Context, il unsafe.Pointer, length uintptr, errcodeRet *cl.Status) cl.Program {
	return forwardErrcode(d.Table(ctx), procCreateProgramWithILKHR, errcodeRet, func(fn fnCreateProgramWithILKHR) cl.Program {
		return fn(ctx, il, length, errcodeRet)
	})
}

func (d *Dispatcher) GetKernelSubGroupInfoKHR(kernel cl.Kernel, device cl.Device, param cl.KernelSubGroupInfo,
	inputSize uintptr, input unsafe.Pointer, size uintptr, value unsafe.Pointer, sizeRet *uintptr) cl.Status {
	return forward(d.Table(kernel), procGetKernelSubGroupInfoKHR, cl.InvalidOperation, func(fn fnGetKernelSubGroupInfoKHR) cl.Status {
		return fn(kernel, device, param, inputSize, input, size, value, sizeRet)
	})
}

func (d *Dispatcher) GetKernelSuggestedLocalWorkSizeKHR(q cl.CommandQueue, kernel cl.Kernel, workDim uint32,
	globalOffset, globalSize, suggestedLocalSize *uintptr) cl.Status {
	return forward(d.Table(q), procGetKernelSuggestedLocalWorkSizeKHR, cl.InvalidOperation, func(fn fnGetKernelSuggestedLocalWorkSizeKHR) cl.Status {
		return fn(q, kernel, workDim, globalOffset, globalSize, suggestedLocalSize)
	})
}

func (d *Dispatcher) TerminateContextKHR(ctx cl.Context) cl.Status {
	return forward(d.Table(ctx), procTerminateContextKHR, cl.InvalidOperation, func(fn fnTerminateContextKHR) cl.Status {
		return fn(ctx)
	})
}
