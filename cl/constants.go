package cl

type (
	PlatformInfo uint32
	DeviceInfo   uint32
	ContextInfo  uint32
	QueueInfo    uint32
	KernelInfo   uint32
	MemInfo      uint32
	DeviceType   uint64
)

const (
	PlatformProfile    PlatformInfo = 0x0900
	PlatformVersion    PlatformInfo = 0x0901
	PlatformName       PlatformInfo = 0x0902
	PlatformVendor     PlatformInfo = 0x0903
	PlatformExtensions PlatformInfo = 0x0904
)

const (
	DeviceTypeInfo   DeviceInfo = 0x1000
	DeviceName       DeviceInfo = 0x102B
	DeviceVendor     DeviceInfo = 0x102C
	DriverVersion    DeviceInfo = 0x102D
	DeviceVersion    DeviceInfo = 0x102F
	DeviceExtensions DeviceInfo = 0x1030
	DevicePlatform   DeviceInfo = 0x1031
)

const (
	ContextDevices    ContextInfo = 0x1081
	ContextNumDevices ContextInfo = 0x1083
)

const (
	QueueContext QueueInfo = 0x1090
	QueueDevice  QueueInfo = 0x1091
)

const KernelContext KernelInfo = 0x1193

const MemContext MemInfo = 0x1106

const (
	DeviceTypeDefault     DeviceType = 1 << 0
	DeviceTypeCPU         DeviceType = 1 << 1
	DeviceTypeGPU         DeviceType = 1 << 2
	DeviceTypeAccelerator DeviceType = 1 << 3
	DeviceTypeCustom      DeviceType = 1 << 4
	DeviceTypeAll         DeviceType = 0xFFFFFFFF
)

func (t DeviceType) String() string {
	switch t {
	case DeviceTypeDefault:
		return "default"
	case DeviceTypeCPU:
		return "cpu"
	case DeviceTypeGPU:
		return "gpu"
	case DeviceTypeAccelerator:
		return "accelerator"
	case DeviceTypeCustom:
		return "custom"
	case DeviceTypeAll:
		return "all"
	}
	return "unknown"
}

// ParseDeviceType accepts the names printed by DeviceType.String.
func ParseDeviceType(s string) (DeviceType, bool) {
	for _, t := range []DeviceType{DeviceTypeDefault, DeviceTypeCPU, DeviceTypeGPU, DeviceTypeAccelerator, DeviceTypeCustom, DeviceTypeAll} {
		if t.String() == s {
			return t, true
		}
	}
	return 0, false
}
