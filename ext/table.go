package ext

import "github.com/haormj/clext/cl"

// Table is the set of extension functions resolved for one platform. It is
// immutable once built.
type Table struct {
	platform cl.Platform
	procs    []any
}

func newTable(rt cl.Runtime, p cl.Platform) *Table {
	return &Table{
		platform: p,
		procs: bindAll(registry, func(name string, fn any) bool {
			return rt.BindForPlatform(p, name, fn)
		}),
	}
}

func (t *Table) Platform() cl.Platform {
	return t.platform
}

// Has reports whether the entry point name resolved on this platform.
func (t *Table) Has(name string) bool {
	for i, e := range registry {
		if e.name == name {
			return t.procs[i] != nil
		}
	}
	return false
}

// Resolved lists the entry points the platform provided.
func (t *Table) Resolved() []Proc {
	return t.filter(true)
}

// Missing lists the compiled-in entry points the platform did not provide.
func (t *Table) Missing() []Proc {
	return t.filter(false)
}

func (t *Table) filter(resolved bool) []Proc {
	var out []Proc
	for i, e := range registry {
		if (t.procs[i] != nil) == resolved {
			out = append(out, Proc{Extension: e.extension, Name: e.name})
		}
	}
	return out
}

func lookup[F any](t *Table, id procID) (F, bool) {
	if t == nil {
		var zero F
		return zero, false
	}
	return slot[F](t.procs, id)
}

// CommonTable holds the entry points resolved through
// clGetExtensionFunctionAddress, which takes no platform.
type CommonTable struct {
	procs []any
}

func newCommonTable(rt cl.Runtime) *CommonTable {
	return &CommonTable{procs: bindAll(commonRegistry, rt.Bind)}
}

func (t *CommonTable) Has(name string) bool {
	for i, e := range commonRegistry {
		if e.name == name {
			return t.procs[i] != nil
		}
	}
	return false
}

func lookupCommon[F any](t *CommonTable, id procID) (F, bool) {
	if t == nil {
		var zero F
		return zero, false
	}
	return slot[F](t.procs, id)
}
