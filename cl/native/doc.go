// Package native implements cl.Runtime and cl.Inspector on top of the system
// OpenCL ICD loader. The loader is opened at run time with purego, so the
// package builds without cgo and without OpenCL headers.
package native
