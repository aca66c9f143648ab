package ext

import (
	"unsafe"

	"github.com/haormj/clext/cl"
)

type (
	fnSetContentSizeBufferPoCL func(buffer, contentSizeBuffer cl.Mem) cl.Status
	fnGetDeviceImageInfoQCOM   func(device cl.Device, width, height uintptr, format *cl.ImageFormat, param cl.ImagePitchInfoQCOM,
		size uintptr, value unsafe.Pointer, sizeRet *uintptr) cl.Status
)

var (
	procSetContentSizeBufferPoCL = registerProc[fnSetContentSizeBufferPoCL]("cl_pocl_content_size", "clSetContentSizeBufferPoCL")
	procGetDeviceImageInfoQCOM   = registerProc[fnGetDeviceImageInfoQCOM]("cl_qcom_ext_host_ptr", "clGetDeviceImageInfoQCOM")
)

func (d *Dispatcher) SetContentSizeBufferPoCL(buffer, contentSizeBuffer cl.Mem) cl.Status {
	return forward(d.Table(buffer), procSetContentSizeBufferPoCL, cl.InvalidOperation, func(fn fnSetContentSizeBufferPoCL) cl.Status {
		return fn(buffer, contentSizeBuffer)
	})
}

func (d *Dispatcher) GetDeviceImageInfoQCOM(device cl.Device, width, height uintptr, format *cl.ImageFormat, param cl.ImagePitchInfoQCOM,
	size uintptr, value unsafe.Pointer, sizeRet *uintptr) cl.Status {
	return forward(d.Table(device), procGetDeviceImageInfoQCOM, cl.InvalidOperation, func(fn fnGetDeviceImageInfoQCOM) cl.Status {
		return fn(device, width, height, format, param, size, value, sizeRet)
	})
}
