//go:build !clext_gl

package ext

import "testing"

func TestGLProcsNotCompiled(t *testing.T) {
	for _, p := range Procs() {
		if p.Extension == "cl_khr_gl_event" || p.Extension == "cl_intel_sharing_format_query_gl" {
			t.Error(p.Name, "is registered without the clext_gl tag")
		}
	}
}
