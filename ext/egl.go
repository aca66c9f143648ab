//go:build clext_egl

package ext

import "github.com/haormj/clext/cl"

type (
	fnCreateEventFromEGLSyncKHR func(ctx cl.Context, sync cl.EGLSyncKHR, display cl.EGLDisplayKHR, errcodeRet *cl.Status) cl.Event
	fnCreateFromEGLImageKHR     func(ctx cl.Context, display cl.EGLDisplayKHR, image cl.EGLImageKHR, flags cl.MemFlags,
		props *cl.EGLImagePropertiesKHR, errcodeRet *cl.Status) cl.Mem
	fnEnqueueAcquireEGLObjectsKHR func(q cl.CommandQueue, numObjects uint32, mems *cl.Mem,
		numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status
	fnEnqueueReleaseEGLObjectsKHR func(q cl.CommandQueue, numObjects uint32, mems *cl.Mem,
		numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status
)

const extEGLImage = "cl_khr_egl_image"

var (
	procCreateEventFromEGLSyncKHR   = registerProc[fnCreateEventFromEGLSyncKHR]("cl_khr_egl_event", "clCreateEventFromEGLSyncKHR")
	procCreateFromEGLImageKHR       = registerProc[fnCreateFromEGLImageKHR](extEGLImage, "clCreateFromEGLImageKHR")
	procEnqueueAcquireEGLObjectsKHR = registerProc[fnEnqueueAcquireEGLObjectsKHR](extEGLImage, "clEnqueueAcquireEGLObjectsKHR")
	procEnqueueReleaseEGLObjectsKHR = registerProc[fnEnqueueReleaseEGLObjectsKHR](extEGLImage, "clEnqueueReleaseEGLObjectsKHR")
)

func (d *Dispatcher) CreateEventFromEGLSyncKHR(ctx cl.Context, sync cl.EGLSyncKHR, display cl.EGLDisplayKHR, errcodeRet *cl.Status) cl.Event {
	return forwardErrcode(d.Table(ctx), procCreateEventFromEGLSyncKHR, errcodeRet, func(fn fnCreateEventFromEGLSyncKHR) cl.Event {
		return fn(ctx, sync, display, errcodeRet)
	})
}

func (d *Dispatcher) CreateFromEGLImageKHR(ctx cl.Context, display cl.EGLDisplayKHR, image cl.EGLImageKHR, flags cl.MemFlags,
	props *cl.EGLImagePropertiesKHR, errcodeRet *cl.Status) cl.Mem {
	return forwardErrcode(d.Table(ctx), procCreateFromEGLImageKHR, errcodeRet, func(fn fnCreateFromEGLImageKHR) cl.Mem {
		return fn(ctx, display, image, flags, props, errcodeRet)
	})
}

func (d *Dispatcher) EnqueueAcquireEGLObjectsKHR(q cl.CommandQueue, numObjects uint32, mems *cl.Mem,
	numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status {
	return forward(d.Table(q), procEnqueueAcquireEGLObjectsKHR, cl.InvalidOperation, func(fn fnEnqueueAcquireEGLObjectsKHR) cl.Status {
		return fn(q, numObjects, mems, numEvents, waitList, event)
	})
}

func (d *Dispatcher) EnqueueReleaseEGLObjectsKHR(q cl.CommandQueue, numObjects uint32, mems *cl.Mem,
	numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status {
	return forward(d.Table(q), procEnqueueReleaseEGLObjectsKHR, cl.InvalidOperation, func(fn fnEnqueueReleaseEGLObjectsKHR) cl.Status {
		return fn(q, numObjects, mems, numEvents, waitList, event)
	})
}
