//go:build clext_gl

package ext

import (
	"testing"

	"github.com/haormj/clext/cl"
	"github.com/haormj/clext/cl/cltest"
)

func TestCreateEventFromGLsync(t *testing.T) {
	rt := cltest.New()
	p := rt.AddPlatform("a", map[string]any{
		"clCreateEventFromGLsyncKHR": func(ctx cl.Context, sync cl.GLsync, errcodeRet *cl.Status) cl.Event {
			if errcodeRet != nil {
				*errcodeRet = cl.Success
			}
			return cl.Event(sync)
		},
	})
	ctx := rt.AddContext(rt.AddDevice(p, "gpu", cl.DeviceTypeGPU))

	d := New(rt, WithMode(MultiPlatform))
	var status cl.Status
	if ev := d.CreateEventFromGLsyncKHR(ctx, 0x77, &status); ev != 0x77 || status != cl.Success {
		t.Error("CreateEventFromGLsyncKHR returned", ev, status)
	}
	if got := d.GetSupportedGLTextureFormatsINTEL(ctx, 0, 0, 0, nil, nil); got != cl.InvalidOperation {
		t.Error("unresolved GetSupportedGLTextureFormatsINTEL returned", got)
	}
}
