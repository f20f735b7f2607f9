package pool

// fixed is a bounded pool: at most capacity values are ever created (beyond
// that, Get waits until a value is Put back instead of allocating), giving
// callers a deterministic memory ceiling instead of sync.Pool's GC-driven,
// best-effort one.
type fixed struct {
	available chan interface{}
	all       chan interface{}
	buf       chan interface{}
	newFn     func() interface{}
}

// NewFixed returns a Pool that never holds more than capacity values,
// constructed by newFn. Useful for a sink that wants a hard bound on
// envelope memory rather than NewDynamic's unbounded, GC-reclaimed growth.
func NewFixed(capacity uint, newFn func() interface{}) Pool {
	return &fixed{
		available: make(chan interface{}, capacity),
		all:       make(chan interface{}, capacity),
		buf:       make(chan interface{}, 1024),
		newFn:     newFn,
	}
}

func (p *fixed) Get() interface{} {
	select {
	case el := <-p.available:
		return el

	case el := <-p.buf:
		return el

	default:
		var el interface{}

		select {
		case p.all <- struct{}{}:
			el = p.newFn()
		case el = <-p.available:
		}
		return el
	}
}

func (p *fixed) Put(el interface{}) {
	select {
	case p.available <- el:
	default:
	}
}
