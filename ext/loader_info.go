package ext

import (
	"bytes"
	"unsafe"

	"github.com/haormj/clext/cl"
)

type fnGetICDLoaderInfoOCLICD func(param cl.ICDLoaderInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) cl.Status

var procGetICDLoaderInfoOCLICD = registerCommonProc[fnGetICDLoaderInfoOCLICD]("cl_loader_info", "clGetICDLoaderInfoOCLICD")

// GetICDLoaderInfoOCLICD queries the ICD loader itself, so it goes through the
// common table rather than a platform's.
func (d *Dispatcher) GetICDLoaderInfoOCLICD(param cl.ICDLoaderInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) cl.Status {
	fn, ok := lookupCommon[fnGetICDLoaderInfoOCLICD](d.Common(), procGetICDLoaderInfoOCLICD)
	if !ok {
		return cl.InvalidOperation
	}
	return fn(param, size, value, sizeRet)
}

// LoaderInfoString returns a string-valued loader property, such as
// cl.ICDLName.
func (d *Dispatcher) LoaderInfoString(param cl.ICDLoaderInfo) (string, error) {
	var size uintptr
	if err := d.GetICDLoaderInfoOCLICD(param, 0, nil, &size).Err(); err != nil {
		return "", err
	}
	if size == 0 {
		return "", nil
	}
	buf := make([]byte, size)
	if err := d.GetICDLoaderInfoOCLICD(param, size, unsafe.Pointer(&buf[0]), nil).Err(); err != nil {
		return "", err
	}
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf), nil
}
