package cl_test

import (
	"testing"

	"github.com/haormj/clext/cl"
)

func TestObjectKinds(t *testing.T) {
	objects := []cl.Object{
		cl.Platform(7),
		cl.Device(7),
		cl.Context(7),
		cl.CommandQueue(7),
		cl.Kernel(7),
		cl.Mem(7),
		cl.Semaphore(7),
		cl.CommandBuffer(7),
		cl.MutableCommand(7),
		cl.Accelerator(7),
	}
	for _, o := range objects {
		if o.Handle() != 7 || o.IsNil() {
			t.Errorf("%T: Handle() = %d, IsNil() = %v", o, o.Handle(), o.IsNil())
		}
	}

	for _, o := range []cl.Object{cl.Platform(0), cl.Mem(0), cl.Accelerator(0)} {
		if !o.IsNil() {
			t.Errorf("%T(0) is not nil", o)
		}
	}
}
