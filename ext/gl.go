//go:build clext_gl

package ext

import "github.com/haormj/clext/cl"

type (
	fnCreateEventFromGLsyncKHR          func(ctx cl.Context, sync cl.GLsync, errcodeRet *cl.Status) cl.Event
	fnGetSupportedGLTextureFormatsINTEL func(ctx cl.Context, flags cl.MemFlags, imageType cl.MemObjectType,
		numEntries uint32, formats *cl.GLenum, numFormats *uint32) cl.Status
)

var (
	procCreateEventFromGLsyncKHR          = registerProc[fnCreateEventFromGLsyncKHR]("cl_khr_gl_event", "clCreateEventFromGLsyncKHR")
	procGetSupportedGLTextureFormatsINTEL = registerProc[fnGetSupportedGLTextureFormatsINTEL]("cl_intel_sharing_format_query_gl", "clGetSupportedGLTextureFormatsINTEL")
)

func (d *Dispatcher) CreateEventFromGLsyncKHR(ctx cl.Context, sync cl.GLsync, errcodeRet *cl.Status) cl.Event {
	return forwardErrcode(d.Table(ctx), procCreateEventFromGLsyncKHR, errcodeRet, func(fn fnCreateEventFromGLsyncKHR) cl.Event {
		return fn(ctx, sync, errcodeRet)
	})
}

func (d *Dispatcher) GetSupportedGLTextureFormatsINTEL(ctx cl.Context, flags cl.MemFlags, imageType cl.MemObjectType,
	numEntries uint32, formats *cl.GLenum, numFormats *uint32) cl.Status {
	return forward(d.Table(ctx), procGetSupportedGLTextureFormatsINTEL, cl.InvalidOperation, func(fn fnGetSupportedGLTextureFormatsINTEL) cl.Status {
		return fn(ctx, flags, imageType, numEntries, formats, numFormats)
	})
}
