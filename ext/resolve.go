package ext

import "github.com/haormj/clext/cl"

// ResolvePlatform walks from obj to the platform it belongs to: a memory
// object or kernel to its context, a context to its first device, a queue to
// its device, a device to its platform. It returns 0 when obj is nil, when any
// query along the way fails, and for semaphores, command-buffers, mutable
// commands and accelerators, whose platform can only be found by probing.
func ResolvePlatform(rt cl.Runtime, obj cl.Object) cl.Platform {
	if obj == nil || obj.IsNil() {
		return 0
	}

	switch o := obj.(type) {
	case cl.Platform:
		return o
	case cl.Device:
		return devicePlatform(rt, o)
	case cl.CommandQueue:
		d, err := rt.QueueDevice(o)
		if err != nil {
			return 0
		}
		return devicePlatform(rt, d)
	case cl.Context:
		return contextPlatform(rt, o)
	case cl.Kernel:
		c, err := rt.KernelContext(o)
		if err != nil {
			return 0
		}
		return contextPlatform(rt, c)
	case cl.Mem:
		c, err := rt.MemContext(o)
		if err != nil {
			return 0
		}
		return contextPlatform(rt, c)
	}
	return 0
}

func devicePlatform(rt cl.Runtime, d cl.Device) cl.Platform {
	if d == 0 {
		return 0
	}
	p, err := rt.DevicePlatform(d)
	if err != nil {
		return 0
	}
	return p
}

// contextPlatform consults only the first device of c.
func contextPlatform(rt cl.Runtime, c cl.Context) cl.Platform {
	if c == 0 {
		return 0
	}
	devices, err := rt.ContextDevices(c)
	if err != nil || len(devices) == 0 {
		return 0
	}
	return devicePlatform(rt, devices[0])
}
