package cl

import "unsafe"

// Window-system and media interop types. The entry points that take them are
// only compiled into package ext with the matching build tag.
type (
	GLsync uintptr
	GLenum uint32

	EGLSyncKHR            unsafe.Pointer
	EGLDisplayKHR         unsafe.Pointer
	EGLImageKHR           unsafe.Pointer
	EGLImagePropertiesKHR uintptr

	D3D10DeviceSourceKHR uint32
	D3D10DeviceSetKHR    uint32
	D3D11DeviceSourceKHR uint32
	D3D11DeviceSetKHR    uint32
	DXGIFormat           uint32

	DX9MediaAdapterTypeKHR uint32
	DX9MediaAdapterSetKHR  uint32
	DX9DeviceSourceINTEL   uint32
	DX9DeviceSetINTEL      uint32
	D3DFormat              uint32

	VAAPIDeviceSourceINTEL uint32
	VAAPIDeviceSetINTEL    uint32
	VASurfaceID            uint32
)

// VAImageFormat mirrors libva's VAImageFormat.
type VAImageFormat struct {
	Fourcc       uint32
	ByteOrder    uint32
	BitsPerPixel uint32
	Depth        uint32
	RedMask      uint32
	GreenMask    uint32
	BlueMask     uint32
	AlphaMask    uint32
	VAReserved   [4]uint32
}
