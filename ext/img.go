package ext

import "github.com/haormj/clext/cl"

type (
	fnEnqueueGenerateMipmapIMG func(q cl.CommandQueue, src, dst cl.Mem, mode cl.MipmapFilterModeIMG, arrayRegion, mipRegion *uintptr,
		numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status
	fnEnqueueAcquireGrallocObjectsIMG func(q cl.CommandQueue, numMems uint32, mems *cl.Mem,
		numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status
	fnEnqueueReleaseGrallocObjectsIMG func(q cl.CommandQueue, numMems uint32, mems *cl.Mem,
		numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status
)

var (
	procEnqueueGenerateMipmapIMG        = registerProc[fnEnqueueGenerateMipmapIMG]("cl_img_generate_mipmap", "clEnqueueGenerateMipmapIMG")
	procEnqueueAcquireGrallocObjectsIMG = registerProc[fnEnqueueAcquireGrallocObjectsIMG]("cl_img_use_gralloc_ptr", "clEnqueueAcquireGrallocObjectsIMG")
	procEnqueueReleaseGrallocObjectsIMG = registerProc[fnEnqueueReleaseGrallocObjectsIMG]("cl_img_use_gralloc_ptr", "clEnqueueReleaseGrallocObjectsIMG")
)

func (d *Dispatcher) EnqueueGenerateMipmapIMG(q cl.CommandQueue, src, dst cl.Mem, mode cl.MipmapFilterModeIMG, arrayRegion, mipRegion *uintptr,
	numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status {
	return forward(d.Table(q), procEnqueueGenerateMipmapIMG, cl.InvalidOperation, func(fn fnEnqueueGenerateMipmapIMG) cl.Status {
		return fn(q, src, dst, mode, arrayRegion, mipRegion, numEvents, waitList, event)
	})
}

func (d *Dispatcher) EnqueueAcquireGrallocObjectsIMG(q cl.CommandQueue, numMems uint32, mems *cl.Mem,
	numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status {
	return forward(d.Table(q), procEnqueueAcquireGrallocObjectsIMG, cl.InvalidOperation, func(fn fnEnqueueAcquireGrallocObjectsIMG) cl.Status {
		return fn(q, numMems, mems, numEvents, waitList, event)
	})
}

func (d *Dispatcher) EnqueueReleaseGrallocObjectsIMG(q cl.CommandQueue, numMems uint32, mems *cl.Mem,
	numEvents uint32, waitList *cl.Event, event *cl.Event) cl.Status {
	return forward(d.Table(q), procEnqueueReleaseGrallocObjectsIMG, cl.InvalidOperation, func(fn fnEnqueueReleaseGrallocObjectsIMG) cl.Status {
		return fn(q, numMems, mems, numEvents, waitList, event)
	})
}
