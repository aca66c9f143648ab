package ext

import (
	"reflect"
	"testing"

	"github.com/haormj/clext/cl"
	"github.com/haormj/clext/cl/cltest"
)

var (
	statusType    = reflect.TypeOf(cl.Status(0))
	errcodeType   = reflect.TypeOf((*cl.Status)(nil))
	queueListType = reflect.TypeOf((*cl.CommandQueue)(nil))
)

const fakeHandle = uintptr(0x5eed)

// trampolines returns the Dispatcher methods that forward to an extension
// entry point, keyed by the entry point name.
func trampolines() map[string]reflect.Method {
	skip := map[string]bool{
		"Common":           true,
		"Init":             true,
		"LoaderInfoString": true,
		"Mode":             true,
		"Table":            true,
		"Tables":           true,
	}
	typ := reflect.TypeOf((*Dispatcher)(nil))
	out := make(map[string]reflect.Method)
	for i := 0; i < typ.NumMethod(); i++ {
		m := typ.Method(i)
		if !skip[m.Name] {
			out["cl"+m.Name] = m
		}
	}
	return out
}

func isCommonProc(name string) bool {
	for _, e := range commonRegistry {
		if e.name == name {
			return true
		}
	}
	return false
}

// recorder counts calls to fake entry points by name.
type recorder map[string]int

// fake builds a func of the entry's type that records the call and returns
// Success, fakeHandle for handle results and nil for pointers.
func (r recorder) fake(e procEntry) any {
	return reflect.MakeFunc(e.typ, func([]reflect.Value) []reflect.Value {
		r[e.name]++
		out := make([]reflect.Value, e.typ.NumOut())
		for i := range out {
			ot := e.typ.Out(i)
			if ot.Kind() == reflect.Uintptr {
				out[i] = reflect.ValueOf(fakeHandle).Convert(ot)
			} else {
				out[i] = reflect.Zero(ot)
			}
		}
		return out
	}).Interface()
}

func (r recorder) procs() map[string]any {
	procs := make(map[string]any, len(registry))
	for _, e := range registry {
		procs[e.name] = r.fake(e)
	}
	return procs
}

func TestEveryProcHasTrampoline(t *testing.T) {
	methods := trampolines()
	procs := append(Procs(), CommonProcs()...)
	for _, p := range procs {
		if _, ok := methods[p.Name]; !ok {
			t.Error(p.Name, "has no Dispatcher method")
		}
	}
	if len(methods) != len(procs) {
		t.Error(len(methods), "trampolines for", len(procs), "registered entry points")
	}
}

func TestTrampolinesFailSoftOnNilHandles(t *testing.T) {
	for _, mode := range []Mode{MultiPlatform, SinglePlatform} {
		rt := cltest.New()
		hits := recorder{}
		rt.AddPlatform("a", hits.procs())
		d := New(rt, WithMode(mode))
		d.Init()

		for name, m := range trampolines() {
			if isCommonProc(name) {
				continue
			}
			status := cl.Success
			hasErrcode := false
			args := []reflect.Value{reflect.ValueOf(d)}
			for i := 1; i < m.Type.NumIn(); i++ {
				in := m.Type.In(i)
				if in == errcodeType {
					args = append(args, reflect.ValueOf(&status))
					hasErrcode = true
					continue
				}
				args = append(args, reflect.Zero(in))
			}

			out := m.Func.Call(args)
			switch {
			case len(out) == 0:
			case out[0].Type() == statusType:
				if got := out[0].Interface().(cl.Status); got != cl.InvalidOperation {
					t.Error(mode, name, "returned", got, "instead of", cl.InvalidOperation)
				}
			default:
				if !out[0].IsZero() {
					t.Error(mode, name, "returned", out[0], "instead of a zero value")
				}
				if hasErrcode && status != cl.InvalidOperation {
					t.Error(mode, name, "set errcode_ret to", status, "instead of", cl.InvalidOperation)
				}
			}
		}
		if len(hits) != 0 {
			t.Error(mode, "forwarded calls with nil handles:", hits)
		}
	}
}

func TestTrampolinesForwardToTheirEntryPoint(t *testing.T) {
	for _, mode := range []Mode{MultiPlatform, SinglePlatform} {
		rt := cltest.New()
		hits := recorder{}
		p := rt.AddPlatform("a", hits.procs())
		for _, e := range commonRegistry {
			rt.SetCommon(e.name, hits.fake(e))
		}
		dev := rt.AddDevice(p, "gpu-a", cl.DeviceTypeGPU)
		ctx := rt.AddContext(dev)
		q := rt.AddQueue(dev)
		handles := map[reflect.Type]reflect.Value{
			reflect.TypeOf(p):   reflect.ValueOf(p),
			reflect.TypeOf(dev): reflect.ValueOf(dev),
			reflect.TypeOf(ctx): reflect.ValueOf(ctx),
			reflect.TypeOf(q):   reflect.ValueOf(q),

			reflect.TypeOf(cl.Kernel(0)):         reflect.ValueOf(rt.AddKernel(ctx)),
			reflect.TypeOf(cl.Mem(0)):            reflect.ValueOf(rt.AddMem(ctx)),
			reflect.TypeOf(cl.Semaphore(0)):      reflect.ValueOf(cl.Semaphore(rt.NewHandle())),
			reflect.TypeOf(cl.CommandBuffer(0)):  reflect.ValueOf(cl.CommandBuffer(rt.NewHandle())),
			reflect.TypeOf(cl.MutableCommand(0)): reflect.ValueOf(cl.MutableCommand(rt.NewHandle())),
			reflect.TypeOf(cl.Accelerator(0)):    reflect.ValueOf(cl.Accelerator(rt.NewHandle())),
		}

		d := New(rt, WithMode(mode))
		if d.Table(ctx) == nil {
			t.Fatal(mode, "no table for context")
		}

		for name, m := range trampolines() {
			for k := range hits {
				delete(hits, k)
			}
			status := cl.Success
			args := []reflect.Value{reflect.ValueOf(d)}
			for i := 1; i < m.Type.NumIn(); i++ {
				in := m.Type.In(i)
				switch v, ok := handles[in]; {
				case ok:
					args = append(args, v)
				case in == errcodeType:
					args = append(args, reflect.ValueOf(&status))
				case in == queueListType:
					args = append(args, reflect.ValueOf(&q))
				case in.Kind() == reflect.Uint32:
					args = append(args, reflect.ValueOf(uint32(1)).Convert(in))
				default:
					args = append(args, reflect.Zero(in))
				}
			}

			out := m.Func.Call(args)
			if hits[name] != 1 || len(hits) != 1 {
				t.Error(mode, name, "reached", hits, "instead of itself once")
				continue
			}
			if status != cl.Success {
				t.Error(mode, name, "set errcode_ret to", status)
			}
			switch {
			case len(out) == 0:
			case out[0].Type() == statusType:
				if got := out[0].Interface().(cl.Status); got != cl.Success {
					t.Error(mode, name, "returned", got, "instead of", cl.Success)
				}
			case out[0].Kind() == reflect.Uintptr:
				if got := uintptr(out[0].Uint()); got != fakeHandle {
					t.Errorf("%v %s returned %#x instead of %#x", mode, name, got, fakeHandle)
				}
			}
		}
	}
}
