package canonjson

import (
	"context"
	"runtime"
	"sync"

	"github.com/jackc/puddle/v2"
)

const (
	// initialBufferSize is the starting capacity of a pooled output buffer.
	initialBufferSize = 512

	// maxRetainedBuffer caps the capacity of a buffer returned to the pool.
	// A call that produced a larger output destroys its buffer on release so
	// one huge document does not pin memory for the life of the process.
	maxRetainedBuffer = 1 << 20
)

// encodeState is the per-call scratch state: the output buffer a
// canonicalization call acquires on entry and releases on return.
type encodeState struct {
	buf []byte
}

// statePool lazily builds the shared buffer pool, sized at twice the
// effective parallelism since canonicalization is CPU bound.
var statePool = sync.OnceValue(func() *puddle.Pool[*encodeState] {
	pool, err := puddle.NewPool(&puddle.Config[*encodeState]{
		Constructor: func(context.Context) (*encodeState, error) {
			return &encodeState{buf: make([]byte, 0, initialBufferSize)}, nil
		},
		Destructor: func(*encodeState) {},
		//nolint:gosec //Core counts fit int32.
		MaxSize: int32(min(runtime.NumCPU(), runtime.GOMAXPROCS(-1)) * 2),
	})

	if err != nil {
		// Only reachable with a non-positive MaxSize, which the expression
		// above cannot produce.
		panic(err)
	}

	return pool
})

func acquireState() (*puddle.Resource[*encodeState], error) {
	// Construction never blocks, so an unbounded context is safe here; the
	// pool only queues when more calls than MaxSize run at once.
	return statePool().Acquire(context.Background())
}

func releaseState(res *puddle.Resource[*encodeState]) {
	state := res.Value()

	if cap(state.buf) > maxRetainedBuffer {
		res.Destroy()
		return
	}

	state.buf = state.buf[:0]
	res.Release()
}
