package messages

import (
	"sync"
	"sync/atomic"
)

type tableHolder struct {
	table Table
}

var (
	defaultTable atomic.Pointer[tableHolder]
	overrideMu   sync.Mutex
)

func init() {
	defaultTable.Store(&tableHolder{table: Empty})
}

// Default returns the process-wide default table.
func Default() Table {
	return defaultTable.Load().table
}

// SetDefault replaces the process-wide default table. Nil resets it to an
// empty table.
func SetDefault(t Table) {
	if t == nil {
		t = Empty
	}
	defaultTable.Store(&tableHolder{table: t})
}

// Override installs t as the process-wide default and returns a function
// restoring the previous one. Overrides nest with stack discipline:
//
//	restore := messages.Override(t)
//	defer restore()
//
// The restore function is idempotent. Prefer WithTable for request-scoped
// overrides: the process default is shared by every goroutine.
func Override(t Table) (restore func()) {
	overrideMu.Lock()
	prev := Default()
	SetDefault(t)
	overrideMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			overrideMu.Lock()
			defer overrideMu.Unlock()
			SetDefault(prev)
		})
	}
}
