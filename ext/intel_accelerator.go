package ext

import (
	"unsafe"

	"github.com/haormj/clext/cl"
)

type (
	fnCreateAcceleratorINTEL  func(ctx cl.Context, typ cl.AcceleratorTypeINTEL, descSize uintptr, desc unsafe.Pointer, errcodeRet *cl.Status) cl.Accelerator
	fnGetAcceleratorInfoINTEL func(acc cl.Accelerator, param cl.AcceleratorInfoINTEL, size uintptr, value unsafe.Pointer, sizeRet *uintptr) cl.Status
	fnRetainAcceleratorINTEL  func(acc cl.Accelerator) cl.Status
	fnReleaseAcceleratorINTEL func(acc cl.Accelerator) cl.Status
)

const extAccelerator = "cl_intel_accelerator"

var (
	procCreateAcceleratorINTEL  = registerProc[fnCreateAcceleratorINTEL](extAccelerator, "clCreateAcceleratorINTEL")
	procGetAcceleratorInfoINTEL = registerProc[fnGetAcceleratorInfoINTEL](extAccelerator, "clGetAcceleratorInfoINTEL")
	procRetainAcceleratorINTEL  = registerProc[fnRetainAcceleratorINTEL](extAccelerator, "clRetainAcceleratorINTEL")
	procReleaseAcceleratorINTEL = registerProc[fnReleaseAcceleratorINTEL](extAccelerator, "clReleaseAcceleratorINTEL")
)

func acceleratorProbe(acc cl.Accelerator) func(*Table) bool {
	return func(t *Table) bool {
		fn, ok := lookup[fnGetAcceleratorInfoINTEL](t, procGetAcceleratorInfoINTEL)
		if !ok {
			return false
		}
		var refs uint32
		return fn(acc, cl.AcceleratorReferenceCountINTEL, unsafe.Sizeof(refs), unsafe.Pointer(&refs), nil) == cl.Success
	}
}

func (d *Dispatcher) CreateAcceleratorINTEL(ctx cl.Context, typ cl.AcceleratorTypeINTEL, descSize uintptr, desc unsafe.Pointer, errcodeRet *cl.Status) cl.Accelerator {
	return forwardErrcode(d.Table(ctx), procCreateAcceleratorINTEL, errcodeRet, func(fn fnCreateAcceleratorINTEL) cl.Accelerator {
		return fn(ctx, typ, descSize, desc, errcodeRet)
	})
}

func (d *Dispatcher) GetAcceleratorInfoINTEL(acc cl.Accelerator, param cl.AcceleratorInfoINTEL, size uintptr, value unsafe.Pointer, sizeRet *uintptr) cl.Status {
	return forward(d.Table(acc), procGetAcceleratorInfoINTEL, cl.InvalidOperation, func(fn fnGetAcceleratorInfoINTEL) cl.Status {
		return fn(acc, param, size, value, sizeRet)
	})
}

func (d *Dispatcher) RetainAcceleratorINTEL(acc cl.Accelerator) cl.Status {
	return forward(d.Table(acc), procRetainAcceleratorINTEL, cl.InvalidOperation, func(fn fnRetainAcceleratorINTEL) cl.Status {
		return fn(acc)
	})
}

func (d *Dispatcher) ReleaseAcceleratorINTEL(acc cl.Accelerator) cl.Status {
	return forward(d.Table(acc), procReleaseAcceleratorINTEL, cl.InvalidOperation, func(fn fnReleaseAcceleratorINTEL) cl.Status {
		return fn(acc)
	})
}
