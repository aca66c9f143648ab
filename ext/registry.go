package ext

import "reflect"

type procID int

type procEntry struct {
	extension string
	name      string
	typ       reflect.Type
}

// Proc names one compiled-in extension entry point.
type Proc struct {
	Extension string
	Name      string
}

var (
	registry       []procEntry
	commonRegistry []procEntry
)

// registerProc adds an entry point resolved per platform. F is the func type
// the symbol is bound as and must match what the trampoline looks up.
func registerProc[F any](extension, name string) procID {
	registry = append(registry, procEntry{
		extension: extension,
		name:      name,
		typ:       reflect.TypeOf((*F)(nil)).Elem(),
	})
	return procID(len(registry) - 1)
}

// registerCommonProc adds an entry point resolved without a platform.
func registerCommonProc[F any](extension, name string) procID {
	commonRegistry = append(commonRegistry, procEntry{
		extension: extension,
		name:      name,
		typ:       reflect.TypeOf((*F)(nil)).Elem(),
	})
	return procID(len(commonRegistry) - 1)
}

// Procs lists the per-platform entry points compiled into this build, in
// registration order.
func Procs() []Proc {
	return listProcs(registry)
}

// CommonProcs lists the platform-independent entry points.
func CommonProcs() []Proc {
	return listProcs(commonRegistry)
}

func listProcs(entries []procEntry) []Proc {
	out := make([]Proc, len(entries))
	for i, e := range entries {
		out[i] = Proc{Extension: e.extension, Name: e.name}
	}
	return out
}

func bindAll(entries []procEntry, bind func(name string, fn any) bool) []any {
	procs := make([]any, len(entries))
	for i, e := range entries {
		fn := reflect.New(e.typ)
		if bind(e.name, fn.Interface()) && !fn.Elem().IsNil() {
			procs[i] = fn.Elem().Interface()
		}
	}
	return procs
}

func slot[F any](procs []any, id procID) (F, bool) {
	fn, ok := procs[id].(F)
	return fn, ok
}
