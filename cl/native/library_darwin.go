package native

// DefaultLibrary is the ICD loader opened when no path is given.
const DefaultLibrary = "/System/Library/Frameworks/OpenCL.framework/OpenCL"
