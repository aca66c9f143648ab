package native

// DefaultLibrary is the ICD loader opened when no path is given.
const DefaultLibrary = "libOpenCL.so.1"
