package cl

import "unsafe"

// Scalar types used in extension entry point signatures. Widths follow the
// Khronos headers.
type (
	Bool     uint32
	MemFlags uint64
	MapFlags uint64

	MemObjectType      uint32
	MemMigrationFlags  uint64
	MemProperties      uint64
	KernelSubGroupInfo uint32

	CommandBufferPropertiesKHR        uint64
	CommandBufferInfoKHR              uint32
	NDRangeKernelCommandPropertiesKHR uint64
	SyncPointKHR                      uint32
	MutableCommandInfoKHR             uint32
	QueuePropertiesKHR                uint64
	SemaphorePropertiesKHR            uint64
	SemaphorePayloadKHR               uint64
	SemaphoreInfoKHR                  uint32
	ExternalSemaphoreHandleTypeKHR    uint32

	DevicePartitionPropertyEXT uint64
	ImageRequirementsInfoEXT   uint32
	MemMigrationFlagsEXT       uint64

	ImportPropertiesARM uintptr
	SVMMemFlagsARM      uint64
	KernelExecInfoARM   uint32

	MipmapFilterModeIMG uint32

	AcceleratorTypeINTEL uint32
	AcceleratorInfoINTEL uint32
	MemPropertiesINTEL   uint64
	MemInfoINTEL         uint32
	MemAdviceINTEL       uint32

	ICDLoaderInfo      uint32
	ImagePitchInfoQCOM uint32
)

const (
	True  Bool = 1
	False Bool = 0
)

const (
	CommandBufferQueuesKHR          CommandBufferInfoKHR = 0x1294
	CommandBufferNumQueuesKHR       CommandBufferInfoKHR = 0x1295
	CommandBufferReferenceCountKHR  CommandBufferInfoKHR = 0x1296
	CommandBufferStateKHR           CommandBufferInfoKHR = 0x1297
	CommandBufferPropertiesArrayKHR CommandBufferInfoKHR = 0x1298
)

const (
	MutableCommandCommandQueueKHR  MutableCommandInfoKHR = 0x12A0
	MutableCommandCommandBufferKHR MutableCommandInfoKHR = 0x12A1
)

const (
	SemaphoreContextKHR        SemaphoreInfoKHR = 0x2039
	SemaphoreReferenceCountKHR SemaphoreInfoKHR = 0x203A
	SemaphorePropertiesInfoKHR SemaphoreInfoKHR = 0x203B
	SemaphorePayloadInfoKHR    SemaphoreInfoKHR = 0x203C
)

const (
	AcceleratorDescriptorINTEL     AcceleratorInfoINTEL = 0x4090
	AcceleratorReferenceCountINTEL AcceleratorInfoINTEL = 0x4091
	AcceleratorContextINTEL        AcceleratorInfoINTEL = 0x4092
	AcceleratorTypeInfoINTEL       AcceleratorInfoINTEL = 0x4093
)

const (
	ICDLOCLVersion ICDLoaderInfo = 1
	ICDLVersion    ICDLoaderInfo = 2
	ICDLName       ICDLoaderInfo = 3
	ICDLVendor     ICDLoaderInfo = 4
)

// ImageFormat mirrors cl_image_format.
type ImageFormat struct {
	ChannelOrder    uint32
	ChannelDataType uint32
}

// ImageDesc mirrors cl_image_desc.
type ImageDesc struct {
	ImageType       MemObjectType
	ImageWidth      uintptr
	ImageHeight     uintptr
	ImageDepth      uintptr
	ImageArraySize  uintptr
	ImageRowPitch   uintptr
	ImageSlicePitch uintptr
	NumMipLevels    uint32
	NumSamples      uint32
	Buffer          Mem
}

// MutableBaseConfigKHR mirrors cl_mutable_base_config_khr.
type MutableBaseConfigKHR struct {
	Type                uint32
	Next                unsafe.Pointer
	NumMutableDispatch  uint32
	MutableDispatchList unsafe.Pointer
}
