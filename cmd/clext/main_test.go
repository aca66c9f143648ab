package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"unsafe"

	"github.com/haormj/clext/cl"
	"github.com/haormj/clext/cl/cltest"
	"github.com/haormj/clext/ext"
)

type fakeTarget struct {
	*cltest.Runtime
	closed bool
}

func (f *fakeTarget) Close() error {
	f.closed = true
	return nil
}

func run(f *fakeTarget, args ...string) (string, error) {
	cmd := newRootCmd(func(string) (target, error) { return f, nil })
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func loaderInfo(values map[cl.ICDLoaderInfo]string) func(cl.ICDLoaderInfo, uintptr, unsafe.Pointer, *uintptr) cl.Status {
	return func(param cl.ICDLoaderInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) cl.Status {
		s, ok := values[param]
		if !ok {
			return cl.InvalidValue
		}
		s += "\x00"
		if sizeRet != nil {
			*sizeRet = uintptr(len(s))
		}
		if value != nil {
			copy(unsafe.Slice((*byte)(value), size), s)
		}
		return cl.Success
	}
}

func TestWritePlatforms(t *testing.T) {
	rt := cltest.New()
	pa := rt.AddPlatform("a", nil)
	rt.AddPlatform("b", nil)
	rt.AddDevice(pa, "gpu-a", cl.DeviceTypeGPU)
	rt.AddDevice(pa, "cpu-a", cl.DeviceTypeCPU)

	var buf bytes.Buffer
	if err := writePlatforms(&buf, rt, rt, cl.DeviceTypeAll, ""); err != nil {
		t.Fatal(err)
	}
	want := `Platform #0: a
  vendor:  a vendor
  version: OpenCL 3.0 a
  Device #0: gpu-a (gpu)
  Device #1: cpu-a (cpu)
Platform #1: b
  vendor:  b vendor
  version: OpenCL 3.0 b
  no devices of type all
`
	if got := buf.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}

	buf.Reset()
	if err := writePlatforms(&buf, rt, rt, cl.DeviceTypeGPU, ""); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "cpu-a") {
		t.Error("cpu device listed when asking for gpus:", buf.String())
	}
}

func TestWritePlatformsEnumerationError(t *testing.T) {
	rt := cltest.New()
	rt.FailEnumeration(cl.OutOfHostMemory)

	var buf bytes.Buffer
	err := writePlatforms(&buf, rt, rt, cl.DeviceTypeAll, "")
	if !errors.Is(err, cl.OutOfHostMemory) {
		t.Error(err, "returned instead of", cl.OutOfHostMemory)
	}
}

func TestTablesCommand(t *testing.T) {
	f := &fakeTarget{Runtime: cltest.New()}
	f.AddPlatform("a", map[string]any{
		"clTerminateContextKHR": func(cl.Context) cl.Status { return cl.Success },
	})
	f.AddPlatform("b", nil)

	out, err := run(f, "tables", "--single-platform=false")
	if err != nil {
		t.Fatal(err)
	}
	total := len(ext.Procs())
	for _, want := range []string{
		fmt.Sprintf("a: 1 of %d entry points resolved", total),
		fmt.Sprintf("b: 0 of %d entry points resolved", total),
		"clTerminateContextKHR",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
	if !f.closed {
		t.Error("library was not closed")
	}

	out, err = run(f, "tables", "--platform", "0", "--missing")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "clTerminateContextKHR") || strings.Contains(out, "b: ") {
		t.Error("unexpected entries in missing report:\n" + out)
	}
	if !strings.Contains(out, "clCreateCommandBufferKHR") {
		t.Error("missing report lacks clCreateCommandBufferKHR:\n" + out)
	}
}

func TestCollectTables(t *testing.T) {
	rt := cltest.New()
	pa := rt.AddPlatform("a", nil)
	pb := rt.AddPlatform("b", nil)

	tests := []struct {
		name  string
		mode  ext.Mode
		index int
		want  []cl.Platform
	}{
		{"multi all", ext.MultiPlatform, -1, []cl.Platform{pa, pb}},
		{"multi one", ext.MultiPlatform, 1, []cl.Platform{pb}},
		{"single default", ext.SinglePlatform, -1, []cl.Platform{pa}},
		{"single selected", ext.SinglePlatform, 1, []cl.Platform{pb}},
	}
	for _, tt := range tests {
		tables, err := collectTables(ext.New(rt, ext.WithMode(tt.mode)), rt, tt.index)
		if err != nil {
			t.Fatal(tt.name, err)
		}
		if len(tables) != len(tt.want) {
			t.Error(tt.name, len(tables), "tables returned instead of", len(tt.want))
			continue
		}
		for i, tbl := range tables {
			if tbl.Platform() != tt.want[i] {
				t.Error(tt.name, "table", i, "serves", tbl.Platform(), "instead of", tt.want[i])
			}
		}
	}

	_, err := collectTables(ext.New(rt), rt, 2)
	if !errors.Is(err, cl.ErrIndexOutOfRange) {
		t.Error(err, "returned instead of", cl.ErrIndexOutOfRange)
	}
}

func TestLoaderCommand(t *testing.T) {
	f := &fakeTarget{Runtime: cltest.New()}
	f.SetCommon("clGetICDLoaderInfoOCLICD", loaderInfo(map[cl.ICDLoaderInfo]string{
		cl.ICDLName:       "Fake ICD Loader",
		cl.ICDLVendor:     "Fake Vendor",
		cl.ICDLVersion:    "3.0.6",
		cl.ICDLOCLVersion: "OpenCL 3.0",
	}))

	out, err := run(f, "loader")
	if err != nil {
		t.Fatal(err)
	}
	want := `name:           Fake ICD Loader
vendor:         Fake Vendor
version:        3.0.6
OpenCL version: OpenCL 3.0
`
	if out != want {
		t.Errorf("got\n%s\nwant\n%s", out, want)
	}
}

func TestLoaderInfoUnsupported(t *testing.T) {
	rt := cltest.New()
	var buf bytes.Buffer
	err := writeLoaderInfo(&buf, ext.New(rt))
	if !errors.Is(err, cl.ErrUnsupported) {
		t.Error(err, "returned instead of", cl.ErrUnsupported)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(&fakeTarget{Runtime: cltest.New()}, "version")
	if err != nil {
		t.Fatal(err)
	}
	if want := "clext version " + Version + "\n"; out != want {
		t.Error(out, "returned instead of", want)
	}
}

func TestInvalidLogLevel(t *testing.T) {
	if _, err := run(&fakeTarget{Runtime: cltest.New()}, "version", "--log-level", "loud"); err == nil {
		t.Error("invalid log level accepted")
	}
}

func TestOpenFailure(t *testing.T) {
	cmd := newRootCmd(func(string) (target, error) { return nil, cl.ErrUnsupported })
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"platforms"})
	if err := cmd.Execute(); !errors.Is(err, cl.ErrUnsupported) {
		t.Error(err, "returned instead of", cl.ErrUnsupported)
	}
}

func TestWritePlatformsVersionFilter(t *testing.T) {
	rt := cltest.New()
	rt.AddPlatform("a", nil)
	rt.AddPlatform("b", nil)

	var buf bytes.Buffer
	if err := writePlatforms(&buf, rt, rt, cl.DeviceTypeAll, "3.0 b"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Contains(out, "Platform #0") || !strings.Contains(out, "Platform #1: b") {
		t.Error("version filter kept the wrong platforms:\n" + out)
	}
}

func TestTablesMarkAdvertisedExtensions(t *testing.T) {
	rt := cltest.New()
	terminate := func(cl.Context) cl.Status { return cl.Success }
	pa := rt.AddPlatform("a", map[string]any{"clTerminateContextKHR": terminate})
	pb := rt.AddPlatform("b", map[string]any{"clTerminateContextKHR": terminate})
	rt.SetExtensions(pa, "cl_khr_terminate_context")
	rt.SetExtensions(pb, "cl_khr_semaphore")

	d := ext.New(rt, ext.WithMode(ext.MultiPlatform))
	tables, err := collectTables(d, rt, -1)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := writeTables(&buf, rt, tables, false); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 4 {
		t.Fatal("short report:\n" + buf.String())
	}
	if strings.Contains(lines[1], "advertised") {
		t.Error("advertised extension flagged:", lines[1])
	}
	if !strings.HasSuffix(lines[3], "cl_khr_terminate_context (not advertised)") {
		t.Error("unadvertised extension not flagged:", lines[3])
	}

	buf.Reset()
	if err := writeTables(&buf, rt, tables[1:], true); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "clCreateSemaphoreWithPropertiesKHR") ||
		!strings.Contains(buf.String(), "cl_khr_semaphore (advertised)") {
		t.Error("missing entry point of an advertised extension not flagged:\n" + buf.String())
	}
}

func TestWriteDevice(t *testing.T) {
	rt := cltest.New()
	rt.AddPlatform("a", nil)
	pb := rt.AddPlatform("b", nil)
	rt.AddDevice(pb, "cpu-b", cl.DeviceTypeCPU)
	rt.AddDevice(pb, "gpu-b", cl.DeviceTypeGPU)

	var buf bytes.Buffer
	if err := writeDevice(&buf, rt, rt, 1, 0, cl.DeviceTypeGPU); err != nil {
		t.Fatal(err)
	}
	want := `platform: b
name:     gpu-b
type:     gpu
vendor:   b vendor
version:  OpenCL 3.0 b
`
	if got := buf.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}

	tests := []struct {
		platform, device int
		want             error
	}{
		{2, 0, cl.ErrIndexOutOfRange},
		{1, 2, cl.ErrIndexOutOfRange},
		{0, 0, cl.DeviceNotFound},
	}
	for _, tt := range tests {
		err := writeDevice(&buf, rt, rt, tt.platform, tt.device, cl.DeviceTypeAll)
		if !errors.Is(err, tt.want) {
			t.Error(err, "returned instead of", tt.want, "for device", tt.platform, tt.device)
		}
	}
}
