package ext

import (
	"errors"
	"sync"
	"testing"
	"unsafe"

	"github.com/haormj/clext/cl"
	"github.com/haormj/clext/cl/cltest"
)

func newMulti(rt cl.Runtime, opts ...Option) *Dispatcher {
	return New(rt, append([]Option{WithMode(MultiPlatform)}, opts...)...)
}

func terminateReturning(s cl.Status, calls *int) func(cl.Context) cl.Status {
	return func(cl.Context) cl.Status {
		if calls != nil {
			*calls++
		}
		return s
	}
}

func TestTableIsBuiltOnce(t *testing.T) {
	rt := cltest.New()
	pa := rt.AddPlatform("a", map[string]any{"clTerminateContextKHR": terminateReturning(cl.Success, nil)})
	pb := rt.AddPlatform("b", map[string]any{"clTerminateContextKHR": terminateReturning(cl.Success, nil)})
	da := rt.AddDevice(pa, "gpu-a", cl.DeviceTypeGPU)
	rt.AddDevice(pb, "gpu-b", cl.DeviceTypeGPU)
	ctx := rt.AddContext(da)
	q := rt.AddQueue(da)

	d := newMulti(rt)
	first := d.Table(ctx)
	if first == nil {
		t.Fatal("no table for context")
	}
	for i := 0; i < 3; i++ {
		if got := d.TerminateContextKHR(ctx); got != cl.Success {
			t.Fatal("TerminateContextKHR returned", got)
		}
	}
	if d.Table(q) != first || d.Table(da) != first || d.Table(pa) != first {
		t.Error("objects on the same platform resolved to different tables")
	}

	if n := rt.Enumerations(); n != 1 {
		t.Error("platforms enumerated", n, "times instead of once")
	}
	if n := rt.Binds("clTerminateContextKHR"); n != 2 {
		t.Error("clTerminateContextKHR resolved", n, "times instead of once per platform")
	}
}

func TestTablesAreIsolatedPerPlatform(t *testing.T) {
	rt := cltest.New()
	var callsA, callsB int
	pa := rt.AddPlatform("a", map[string]any{"clTerminateContextKHR": terminateReturning(cl.Success, &callsA)})
	pb := rt.AddPlatform("b", map[string]any{"clTerminateContextKHR": terminateReturning(cl.InvalidContext, &callsB)})
	ctxA := rt.AddContext(rt.AddDevice(pa, "gpu-a", cl.DeviceTypeGPU))
	ctxB := rt.AddContext(rt.AddDevice(pb, "gpu-b", cl.DeviceTypeGPU))

	d := newMulti(rt)
	ta, tb := d.Table(ctxA), d.Table(ctxB)
	if ta == nil || tb == nil {
		t.Fatal("missing table", ta, tb)
	}
	if ta == tb {
		t.Fatal("both platforms share one table")
	}
	if ta.Platform() != pa || tb.Platform() != pb {
		t.Error("tables report platforms", ta.Platform(), tb.Platform(), "instead of", pa, pb)
	}

	if got := d.TerminateContextKHR(ctxA); got != cl.Success {
		t.Error("platform a returned", got)
	}
	if got := d.TerminateContextKHR(ctxB); got != cl.InvalidContext {
		t.Error("platform b returned", got)
	}
	if callsA != 1 || callsB != 1 {
		t.Error("calls routed", callsA, callsB, "instead of 1 1")
	}

	tables := d.Tables()
	if len(tables) != 2 || tables[0] != ta || tables[1] != tb {
		t.Error("Tables() is not in enumeration order")
	}
}

func TestNilHandlesFailSoft(t *testing.T) {
	rt := cltest.New()
	p := rt.AddPlatform("a", map[string]any{
		"clTerminateContextKHR": terminateReturning(cl.Success, nil),
		"clRetainSemaphoreKHR":  func(cl.Semaphore) cl.Status { return cl.Success },
		"clSVMFreeARM":          func(cl.Context, unsafe.Pointer) { t.Error("clSVMFreeARM called for a nil context") },
	})
	rt.AddDevice(p, "gpu", cl.DeviceTypeGPU)

	for _, mode := range []Mode{MultiPlatform, SinglePlatform} {
		d := New(rt, WithMode(mode))

		if d.Table(nil) != nil {
			t.Error(mode, "returned a table for a nil object")
		}
		if d.Table(cl.Context(0)) != nil {
			t.Error(mode, "returned a table for a nil context")
		}
		if got := d.TerminateContextKHR(0); got != cl.InvalidOperation {
			t.Error(mode, "TerminateContextKHR(nil) returned", got)
		}
		if got := d.RetainSemaphoreKHR(0); got != cl.InvalidOperation {
			t.Error(mode, "RetainSemaphoreKHR(nil) returned", got)
		}
		if got := d.FinalizeCommandBufferKHR(0); got != cl.InvalidOperation {
			t.Error(mode, "FinalizeCommandBufferKHR(nil) returned", got)
		}
		if got := d.GetMutableCommandInfoKHR(0, cl.MutableCommandCommandQueueKHR, 0, nil, nil); got != cl.InvalidOperation {
			t.Error(mode, "GetMutableCommandInfoKHR(nil) returned", got)
		}
		if got := d.ReleaseAcceleratorINTEL(0); got != cl.InvalidOperation {
			t.Error(mode, "ReleaseAcceleratorINTEL(nil) returned", got)
		}

		status := cl.Success
		if sema := d.CreateSemaphoreWithPropertiesKHR(0, nil, &status); sema != 0 || status != cl.InvalidOperation {
			t.Error(mode, "CreateSemaphoreWithPropertiesKHR(nil) returned", sema, status)
		}
		if sema := d.CreateSemaphoreWithPropertiesKHR(0, nil, nil); sema != 0 {
			t.Error(mode, "CreateSemaphoreWithPropertiesKHR(nil) without errcode returned", sema)
		}
		if ptr := d.SVMAllocARM(0, 0, 64, 0); ptr != nil {
			t.Error(mode, "SVMAllocARM(nil) returned", ptr)
		}
		d.SVMFreeARM(0, nil)
	}
}

func TestSinglePlatformNilDoesNotBuild(t *testing.T) {
	rt := cltest.New()
	rt.AddPlatform("a", nil)

	d := New(rt, WithMode(SinglePlatform))
	d.Table(cl.Device(0))
	d.Init()
	if len(d.Tables()) != 0 {
		t.Error("a nil object built a table")
	}
	if n := rt.Enumerations(); n != 0 {
		t.Error("single-platform mode enumerated platforms", n, "times")
	}
}

func TestMissingProcLeavesOthersWorking(t *testing.T) {
	rt := cltest.New()
	var retains int
	p := rt.AddPlatform("a", map[string]any{
		"clRetainDeviceEXT": func(cl.Device) cl.Status {
			retains++
			return cl.Success
		},
	})
	dev := rt.AddDevice(p, "gpu", cl.DeviceTypeGPU)

	d := newMulti(rt)
	if got := d.RetainDeviceEXT(dev); got != cl.Success {
		t.Error("RetainDeviceEXT returned", got)
	}
	if got := d.ReleaseDeviceEXT(dev); got != cl.InvalidOperation {
		t.Error("ReleaseDeviceEXT without a proc returned", got)
	}
	if got := d.RetainDeviceEXT(dev); got != cl.Success {
		t.Error("RetainDeviceEXT after a missing proc returned", got)
	}
	if retains != 2 {
		t.Error("clRetainDeviceEXT called", retains, "times instead of 2")
	}
	if n := rt.Binds("clRetainDeviceEXT"); n != 1 {
		t.Error("clRetainDeviceEXT resolved", n, "times")
	}

	tbl := d.Table(dev)
	if !tbl.Has("clRetainDeviceEXT") || tbl.Has("clReleaseDeviceEXT") {
		t.Error("Has() does not match the platform's procs")
	}
}

// A platform that exports one entry point of a pair and not the other,
// reached from a device.
func TestDeviceDerivedForwarding(t *testing.T) {
	rt := cltest.New()
	var gotDev cl.Device
	var gotWidth uintptr
	p := rt.AddPlatform("qcom", map[string]any{
		"clGetDeviceImageInfoQCOM": func(dev cl.Device, width, height uintptr, format *cl.ImageFormat, param cl.ImagePitchInfoQCOM,
			size uintptr, value unsafe.Pointer, sizeRet *uintptr) cl.Status {
			gotDev, gotWidth = dev, width
			return cl.InvalidImageSize
		},
	})
	dev := rt.AddDevice(p, "adreno", cl.DeviceTypeGPU)

	d := newMulti(rt)
	if got := d.GetDeviceImageInfoQCOM(dev, 640, 480, nil, 0, 0, nil, nil); got != cl.InvalidImageSize {
		t.Error("forwarded call returned", got, "instead of the driver's status")
	}
	if gotDev != dev || gotWidth != 640 {
		t.Error("arguments were not forwarded unchanged")
	}

	before := d.Table(dev)
	if got := d.ReleaseDeviceEXT(dev); got != cl.InvalidOperation {
		t.Error("unresolved ReleaseDeviceEXT returned", got)
	}
	if d.Table(dev) != before || !before.Has("clGetDeviceImageInfoQCOM") {
		t.Error("a failed call changed the resolved table")
	}
}

func TestSemaphoreProbeStopsAtFirstOwner(t *testing.T) {
	rt := cltest.New()
	sema := cl.Semaphore(rt.NewHandle())
	var probedA, probedC int
	var released []string

	rt.AddPlatform("a", map[string]any{
		"clGetSemaphoreInfoKHR": func(s cl.Semaphore, param cl.SemaphoreInfoKHR, size uintptr, value unsafe.Pointer, sizeRet *uintptr) cl.Status {
			probedA++
			if param != cl.SemaphoreReferenceCountKHR {
				t.Error("probe asked for", param)
			}
			return cl.InvalidValue
		},
		"clReleaseSemaphoreKHR": func(cl.Semaphore) cl.Status {
			released = append(released, "a")
			return cl.Success
		},
	})
	pb := rt.AddPlatform("b", map[string]any{
		"clGetSemaphoreInfoKHR": func(s cl.Semaphore, param cl.SemaphoreInfoKHR, size uintptr, value unsafe.Pointer, sizeRet *uintptr) cl.Status {
			if s != sema {
				return cl.InvalidValue
			}
			*(*uint32)(value) = 1
			return cl.Success
		},
		"clReleaseSemaphoreKHR": func(cl.Semaphore) cl.Status {
			released = append(released, "b")
			return cl.Success
		},
	})
	rt.AddPlatform("c", map[string]any{
		"clGetSemaphoreInfoKHR": func(cl.Semaphore, cl.SemaphoreInfoKHR, uintptr, unsafe.Pointer, *uintptr) cl.Status {
			probedC++
			return cl.Success
		},
	})

	d := newMulti(rt)
	if got := d.ReleaseSemaphoreKHR(sema); got != cl.InvalidOperation {
		t.Error("probe before any table was built returned", got)
	}
	if rt.Enumerations() != 0 {
		t.Error("a probe-only handle triggered a build")
	}

	d.Init()
	if got := d.Table(sema); got == nil || got.Platform() != pb {
		t.Fatal("semaphore resolved to", got, "instead of platform b")
	}
	if got := d.ReleaseSemaphoreKHR(sema); got != cl.Success {
		t.Error("ReleaseSemaphoreKHR returned", got)
	}
	if len(released) != 1 || released[0] != "b" {
		t.Error("release went to", released)
	}
	if probedA == 0 {
		t.Error("platform a was not probed")
	}
	if probedC != 0 {
		t.Error("scanning continued past the owning table")
	}
}

func TestProbeKinds(t *testing.T) {
	tests := []struct {
		name  string
		procs func(owner uintptr) map[string]any
		table func(d *Dispatcher, h uintptr) *Table
	}{
		{
			name: "command buffer",
			procs: func(owner uintptr) map[string]any {
				return map[string]any{
					"clGetCommandBufferInfoKHR": func(cb cl.CommandBuffer, param cl.CommandBufferInfoKHR, size uintptr, value unsafe.Pointer, sizeRet *uintptr) cl.Status {
						if uintptr(cb) != owner || param != cl.CommandBufferReferenceCountKHR {
							return cl.InvalidValue
						}
						return cl.Success
					},
				}
			},
			table: func(d *Dispatcher, h uintptr) *Table { return d.Table(cl.CommandBuffer(h)) },
		},
		{
			name: "mutable command",
			procs: func(owner uintptr) map[string]any {
				return map[string]any{
					"clGetMutableCommandInfoKHR": func(cmd cl.MutableCommand, param cl.MutableCommandInfoKHR, size uintptr, value unsafe.Pointer, sizeRet *uintptr) cl.Status {
						if uintptr(cmd) != owner || param != cl.MutableCommandCommandBufferKHR {
							return cl.InvalidValue
						}
						return cl.Success
					},
				}
			},
			table: func(d *Dispatcher, h uintptr) *Table { return d.Table(cl.MutableCommand(h)) },
		},
		{
			name: "accelerator",
			procs: func(owner uintptr) map[string]any {
				return map[string]any{
					"clGetAcceleratorInfoINTEL": func(acc cl.Accelerator, param cl.AcceleratorInfoINTEL, size uintptr, value unsafe.Pointer, sizeRet *uintptr) cl.Status {
						if uintptr(acc) != owner || param != cl.AcceleratorReferenceCountINTEL {
							return cl.InvalidValue
						}
						return cl.Success
					},
				}
			},
			table: func(d *Dispatcher, h uintptr) *Table { return d.Table(cl.Accelerator(h)) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := cltest.New()
			h := rt.NewHandle()
			rt.AddPlatform("a", tt.procs(0))
			pb := rt.AddPlatform("b", tt.procs(h))

			d := newMulti(rt)
			d.Init()
			if got := tt.table(d, h); got == nil || got.Platform() != pb {
				t.Error("resolved to", got, "instead of platform b")
			}
			if got := tt.table(d, rt.NewHandle()); got != nil {
				t.Error("an unknown handle resolved to", got.Platform())
			}
			if got := tt.table(d, 0); got != nil {
				t.Error("a nil handle resolved to", got.Platform())
			}
		})
	}
}

func TestProbeWithOneTableSkipsQuery(t *testing.T) {
	rt := cltest.New()
	rt.AddPlatform("only", map[string]any{
		"clGetSemaphoreInfoKHR": func(cl.Semaphore, cl.SemaphoreInfoKHR, uintptr, unsafe.Pointer, *uintptr) cl.Status {
			t.Error("probe query issued with a single table")
			return cl.InvalidValue
		},
		"clRetainSemaphoreKHR": func(cl.Semaphore) cl.Status { return cl.Success },
	})

	d := newMulti(rt)
	d.Init()
	if got := d.RetainSemaphoreKHR(cl.Semaphore(rt.NewHandle())); got != cl.Success {
		t.Error("RetainSemaphoreKHR returned", got)
	}
}

func TestCreateCommandBufferUsesFirstQueue(t *testing.T) {
	rt := cltest.New()
	create := func(name string, out *string) func(uint32, *cl.CommandQueue, *cl.CommandBufferPropertiesKHR, *cl.Status) cl.CommandBuffer {
		return func(n uint32, queues *cl.CommandQueue, props *cl.CommandBufferPropertiesKHR, errcodeRet *cl.Status) cl.CommandBuffer {
			*out = name
			if errcodeRet != nil {
				*errcodeRet = cl.Success
			}
			return cl.CommandBuffer(0x42)
		}
	}
	var used string
	pa := rt.AddPlatform("a", map[string]any{"clCreateCommandBufferKHR": create("a", &used)})
	pb := rt.AddPlatform("b", map[string]any{"clCreateCommandBufferKHR": create("b", &used)})
	rt.AddDevice(pa, "gpu-a", cl.DeviceTypeGPU)
	qb := rt.AddQueue(rt.AddDevice(pb, "gpu-b", cl.DeviceTypeGPU))

	d := newMulti(rt)
	var status cl.Status
	queues := []cl.CommandQueue{qb}
	if cb := d.CreateCommandBufferKHR(1, &queues[0], nil, &status); cb != 0x42 || status != cl.Success || used != "b" {
		t.Error("create returned", cb, status, "via", used)
	}

	used = ""
	if cb := d.CreateCommandBufferKHR(0, &queues[0], nil, &status); cb != 0 || status != cl.InvalidOperation || used != "" {
		t.Error("create with no queues returned", cb, status, "via", used)
	}
	if cb := d.CreateCommandBufferKHR(1, nil, nil, &status); cb != 0 || status != cl.InvalidOperation {
		t.Error("create with a nil queue list returned", cb, status)
	}
}

func TestSinglePlatformKeepsFirstTable(t *testing.T) {
	rt := cltest.New()
	var callsA, callsB int
	pa := rt.AddPlatform("a", map[string]any{"clTerminateContextKHR": terminateReturning(cl.Success, &callsA)})
	pb := rt.AddPlatform("b", map[string]any{"clTerminateContextKHR": terminateReturning(cl.Success, &callsB)})
	ctxA := rt.AddContext(rt.AddDevice(pa, "gpu-a", cl.DeviceTypeGPU))
	ctxB := rt.AddContext(rt.AddDevice(pb, "gpu-b", cl.DeviceTypeGPU))

	d := New(rt, WithMode(SinglePlatform))
	if d.Mode() != SinglePlatform {
		t.Fatal("mode is", d.Mode())
	}
	d.TerminateContextKHR(ctxB)
	d.TerminateContextKHR(ctxA)
	if callsB != 2 || callsA != 0 {
		t.Error("calls went to", callsA, callsB, "instead of all to b")
	}
	if n := rt.Enumerations(); n != 0 {
		t.Error("single-platform mode enumerated platforms")
	}
	if tables := d.Tables(); len(tables) != 1 || tables[0].Platform() != pb {
		t.Error("unexpected tables", tables)
	}
}

func TestEnumerationIsNotRetried(t *testing.T) {
	t.Run("failure", func(t *testing.T) {
		rt := cltest.New()
		p := rt.AddPlatform("a", map[string]any{"clTerminateContextKHR": terminateReturning(cl.Success, nil)})
		ctx := rt.AddContext(rt.AddDevice(p, "gpu", cl.DeviceTypeGPU))
		rt.FailEnumeration(errors.New("driver not ready"))

		d := newMulti(rt)
		if got := d.TerminateContextKHR(ctx); got != cl.InvalidOperation {
			t.Error("call with failed enumeration returned", got)
		}
		rt.FailEnumeration(nil)
		if got := d.TerminateContextKHR(ctx); got != cl.InvalidOperation {
			t.Error("cache recovered after enumeration started working:", got)
		}
		if n := rt.Enumerations(); n != 1 {
			t.Error("platforms enumerated", n, "times")
		}
	})

	t.Run("no platforms", func(t *testing.T) {
		rt := cltest.New()
		d := newMulti(rt)
		d.Init()
		if len(d.Tables()) != 0 {
			t.Fatal("tables built without platforms")
		}

		p := rt.AddPlatform("late", map[string]any{"clTerminateContextKHR": terminateReturning(cl.Success, nil)})
		ctx := rt.AddContext(rt.AddDevice(p, "gpu", cl.DeviceTypeGPU))
		if got := d.TerminateContextKHR(ctx); got != cl.InvalidOperation {
			t.Error("late platform was picked up:", got)
		}
		if n := rt.Enumerations(); n != 1 {
			t.Error("platforms enumerated", n, "times")
		}
	})
}

func TestConcurrentFirstUse(t *testing.T) {
	rt := cltest.New()
	var ctxs []cl.Context
	for _, name := range []string{"a", "b", "c"} {
		p := rt.AddPlatform(name, map[string]any{"clTerminateContextKHR": func(cl.Context) cl.Status { return cl.Success }})
		ctxs = append(ctxs, rt.AddContext(rt.AddDevice(p, "gpu-"+name, cl.DeviceTypeGPU)))
	}

	d := newMulti(rt, WithBuildConcurrency(2))
	var wg sync.WaitGroup
	errs := make(chan cl.Status, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(ctx cl.Context) {
			defer wg.Done()
			if got := d.TerminateContextKHR(ctx); got != cl.Success {
				errs <- got
			}
		}(ctxs[i%len(ctxs)])
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Error("concurrent call returned", got)
	}

	if n := rt.Enumerations(); n != 1 {
		t.Error("platforms enumerated", n, "times")
	}
	if n := rt.Binds("clTerminateContextKHR"); n != 3 {
		t.Error("clTerminateContextKHR resolved", n, "times")
	}
}

func TestCommonTable(t *testing.T) {
	rt := cltest.New()
	d := newMulti(rt)
	if _, err := d.LoaderInfoString(cl.ICDLName); err != cl.InvalidOperation {
		t.Error("loader info without the entry point returned", err)
	}

	rt2 := cltest.New()
	rt2.SetCommon("clGetICDLoaderInfoOCLICD", func(param cl.ICDLoaderInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) cl.Status {
		var s string
		switch param {
		case cl.ICDLName:
			s = "Khronos OpenCL ICD Loader"
		case cl.ICDLVersion:
			s = "3.0.6"
		default:
			return cl.InvalidValue
		}
		b := append([]byte(s), 0)
		if sizeRet != nil {
			*sizeRet = uintptr(len(b))
		}
		if value != nil {
			copy(unsafe.Slice((*byte)(value), size), b)
		}
		return cl.Success
	})

	d = newMulti(rt2)
	name, err := d.LoaderInfoString(cl.ICDLName)
	if err != nil || name != "Khronos OpenCL ICD Loader" {
		t.Error("loader name", name, err)
	}
	if v, err := d.LoaderInfoString(cl.ICDLVersion); err != nil || v != "3.0.6" {
		t.Error("loader version", v, err)
	}
	if _, err := d.LoaderInfoString(cl.ICDLVendor); err != cl.InvalidValue {
		t.Error("unknown loader param returned", err)
	}
	if !d.Common().Has("clGetICDLoaderInfoOCLICD") {
		t.Error("common table is missing the loader entry point")
	}
	if n := rt2.Binds("clGetICDLoaderInfoOCLICD"); n != 1 {
		t.Error("common entry point resolved", n, "times")
	}
	if rt2.Enumerations() != 0 {
		t.Error("the common table enumerated platforms")
	}
}
