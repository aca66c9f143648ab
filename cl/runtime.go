package cl

// Runtime is the part of an OpenCL ICD the extension loader depends on:
// platform enumeration, the introspection queries used to walk from an object
// to its platform, and extension symbol resolution.
//
// BindForPlatform and Bind take fn as a pointer to a func variable. When the
// symbol exists it is bound into *fn and true is returned; otherwise *fn is
// left untouched.
type Runtime interface {
	PlatformIDs() ([]Platform, error)
	DevicePlatform(Device) (Platform, error)
	ContextDevices(Context) ([]Device, error)
	QueueDevice(CommandQueue) (Device, error)
	KernelContext(Kernel) (Context, error)
	MemContext(Mem) (Context, error)

	BindForPlatform(p Platform, name string, fn any) bool
	Bind(name string, fn any) bool
}

// Inspector answers the descriptive queries used for reporting.
type Inspector interface {
	PlatformInfoString(Platform, PlatformInfo) (string, error)
	DeviceIDs(Platform, DeviceType) ([]Device, error)
	DeviceInfoString(Device, DeviceInfo) (string, error)
}
