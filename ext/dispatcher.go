package ext

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/haormj/clext/cl"
)

// Mode selects how many platforms a Dispatcher serves.
type Mode int

const (
	// MultiPlatform builds a table for every platform on first use and
	// routes each call to the table of the handle's platform.
	MultiPlatform Mode = iota
	// SinglePlatform builds one table from the first handle seen and uses it
	// for every call afterwards.
	SinglePlatform
)

func (m Mode) String() string {
	switch m {
	case MultiPlatform:
		return "multi-platform"
	case SinglePlatform:
		return "single-platform"
	}
	return "unknown"
}

type Option func(*Dispatcher)

func WithMode(m Mode) Option {
	return func(d *Dispatcher) {
		d.mode = m
	}
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(d *Dispatcher) {
		d.log = l
	}
}

// WithBuildConcurrency bounds how many platform tables are built at once in
// multi-platform mode. Values below 1 mean no limit.
func WithBuildConcurrency(n int) Option {
	return func(d *Dispatcher) {
		d.concurrency = n
	}
}

// Dispatcher caches extension dispatch tables and forwards extension calls
// through them. It is safe for concurrent use.
type Dispatcher struct {
	rt          cl.Runtime
	mode        Mode
	log         logrus.FieldLogger
	concurrency int

	once   sync.Once
	tables atomic.Pointer[[]*Table]

	commonOnce sync.Once
	common     atomic.Pointer[CommonTable]
}

func New(rt cl.Runtime, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		rt:   rt,
		mode: DefaultMode,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		d.log = l
	}
	return d
}

func (d *Dispatcher) Mode() Mode {
	return d.mode
}

// Init enumerates platforms and builds their tables. It only has an effect in
// multi-platform mode, and only the first time it is called; later calls and
// calls from other goroutines wait for that first build to finish.
func (d *Dispatcher) Init() {
	if d.mode != MultiPlatform {
		return
	}
	d.once.Do(d.buildAll)
}

// Tables returns the tables built so far, in platform enumeration order.
func (d *Dispatcher) Tables() []*Table {
	p := d.tables.Load()
	if p == nil {
		return nil
	}
	return append([]*Table(nil), (*p)...)
}

// Table returns the dispatch table serving obj, or nil when there is none.
func (d *Dispatcher) Table(obj cl.Object) *Table {
	switch o := obj.(type) {
	case cl.Semaphore:
		return d.probe(o.IsNil(), semaphoreProbe(o))
	case cl.CommandBuffer:
		return d.probe(o.IsNil(), commandBufferProbe(o))
	case cl.MutableCommand:
		return d.probe(o.IsNil(), mutableCommandProbe(o))
	case cl.Accelerator:
		return d.probe(o.IsNil(), acceleratorProbe(o))
	}

	if d.mode == SinglePlatform {
		if obj == nil || obj.IsNil() {
			return nil
		}
		d.once.Do(func() {
			d.buildOne(ResolvePlatform(d.rt, obj))
		})
		return d.first()
	}

	d.Init()
	p := ResolvePlatform(d.rt, obj)
	for _, t := range d.loaded() {
		if t.platform == p {
			return t
		}
	}
	return nil
}

// Common returns the table of platform-independent entry points, building it
// on first use.
func (d *Dispatcher) Common() *CommonTable {
	d.commonOnce.Do(func() {
		d.common.Store(newCommonTable(d.rt))
		d.log.WithField("procs", len(commonRegistry)).Debug("built common dispatch table")
	})
	return d.common.Load()
}

// probe picks the table for a handle whose platform cannot be queried
// directly. It never builds tables.
func (d *Dispatcher) probe(isNil bool, owns func(*Table) bool) *Table {
	if isNil {
		return nil
	}
	tables := d.loaded()
	switch len(tables) {
	case 0:
		return nil
	case 1:
		return tables[0]
	}
	for _, t := range tables {
		if owns(t) {
			return t
		}
	}
	return nil
}

func (d *Dispatcher) loaded() []*Table {
	p := d.tables.Load()
	if p == nil {
		return nil
	}
	return *p
}

func (d *Dispatcher) first() *Table {
	if tables := d.loaded(); len(tables) > 0 {
		return tables[0]
	}
	return nil
}

func (d *Dispatcher) buildOne(p cl.Platform) {
	t := newTable(d.rt, p)
	d.tables.Store(&[]*Table{t})
	d.log.WithFields(logrus.Fields{
		"platform": p,
		"resolved": len(t.Resolved()),
	}).Debug("built dispatch table")
}

func (d *Dispatcher) buildAll() {
	ids, err := d.rt.PlatformIDs()
	if err != nil {
		d.log.WithError(err).Debug("platform enumeration failed, no dispatch tables built")
		d.tables.Store(&[]*Table{})
		return
	}
	if len(ids) == 0 {
		d.log.Debug("no platforms found, no dispatch tables built")
		d.tables.Store(&[]*Table{})
		return
	}

	tables := make([]*Table, len(ids))
	var g errgroup.Group
	if d.concurrency > 0 {
		g.SetLimit(d.concurrency)
	}
	for i, p := range ids {
		i, p := i, p
		g.Go(func() error {
			tables[i] = newTable(d.rt, p)
			return nil
		})
	}
	_ = g.Wait()

	d.tables.Store(&tables)
	for _, t := range tables {
		d.log.WithFields(logrus.Fields{
			"platform": t.platform,
			"resolved": len(t.Resolved()),
		}).Debug("built dispatch table")
	}
}

// forward calls the entry point id of t through call, or returns fail when t
// is nil or the platform did not provide it.
func forward[F, R any](t *Table, id procID, fail R, call func(F) R) R {
	fn, ok := lookup[F](t, id)
	if !ok {
		return fail
	}
	return call(fn)
}

// forwardErrcode is forward for entry points that return a handle or pointer
// and report failure through errcode_ret.
func forwardErrcode[F, R any](t *Table, id procID, errcodeRet *cl.Status, call func(F) R) R {
	fn, ok := lookup[F](t, id)
	if !ok {
		if errcodeRet != nil {
			*errcodeRet = cl.InvalidOperation
		}
		var zero R
		return zero
	}
	return call(fn)
}
