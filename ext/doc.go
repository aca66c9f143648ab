/*
Package ext resolves OpenCL extension entry points and forwards calls to them.

A Dispatcher keeps one Table per OpenCL platform. A Table holds the extension
functions the platform's ICD returned from
clGetExtensionFunctionAddressForPlatform, bound to Go func values once and
never re-resolved. Every supported extension function has a method on
Dispatcher named after the C entry point without its "cl" prefix:

	d := ext.New(rt)
	var status cl.Status
	sema := d.CreateSemaphoreWithPropertiesKHR(ctx, props, &status)

The method finds the table for the handle it was given, and forwards the call
unchanged. When no table or no function is available it fails the way the
extension itself would: status returns are cl.InvalidOperation, handle
returns are zero with cl.InvalidOperation stored in errcode_ret, and void
calls do nothing.

Semaphores, command-buffers, mutable commands and accelerators cannot be asked
for their platform without calling an extension function first. For those the
dispatcher never builds tables; it asks each existing table's info query
whether it recognises the handle and picks the first one that does.

Window-system interop groups are only compiled with a build tag:

	clext_gl     cl_khr_gl_event, cl_intel_sharing_format_query_gl
	clext_egl    cl_khr_egl_event, cl_khr_egl_image
	clext_dx9    cl_khr_dx9_media_sharing, cl_intel_dx9_media_sharing, cl_intel_sharing_format_query_dx9
	clext_d3d10  cl_khr_d3d10_sharing, cl_intel_sharing_format_query_d3d10
	clext_d3d11  cl_khr_d3d11_sharing, cl_intel_sharing_format_query_d3d11
	clext_va_api cl_intel_va_api_media_sharing, cl_intel_sharing_format_query_va_api

Building with clext_single_platform makes SinglePlatform the default mode.
*/
package ext
