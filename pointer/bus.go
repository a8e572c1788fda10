package pointer

import (
	"sort"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Listener observes a mouse event and may answer with a message for the
// host to route. A nil return means no message.
type Listener func(tea.MouseMsg) tea.Msg

// Bus is the host-wide mouse subscription registry.
//
// The zero value is not usable; use NewBus.
type Bus struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[uint64]Listener
	log    *zap.Logger
}

func NewBus(log *zap.Logger) *Bus {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bus{subs: make(map[uint64]Listener), log: log}
}

// Subscribe registers fn and returns its release func. Release is idempotent
// and safe to call from any copy of the holder.
func (b *Bus) Subscribe(fn Listener) (release func()) {
	if fn == nil {
		return func() {}
	}

	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs[id] = fn
	n := len(b.subs)
	b.mu.Unlock()

	b.log.Debug("pointer subscription acquired", zap.Uint64("id", id), zap.Int("active", n))

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			n := len(b.subs)
			b.mu.Unlock()
			b.log.Debug("pointer subscription released", zap.Uint64("id", id), zap.Int("active", n))
		})
	}
}

// Len returns the number of active subscriptions.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Dispatch runs every listener against msg, in subscription order, and
// returns the produced messages as a single command. Listeners run outside
// the bus lock so they may release themselves.
func (b *Bus) Dispatch(msg tea.MouseMsg) tea.Cmd {
	b.mu.Lock()
	ids := make([]uint64, 0, len(b.subs))
	for id := range b.subs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	listeners := make([]Listener, 0, len(ids))
	for _, id := range ids {
		listeners = append(listeners, b.subs[id])
	}
	b.mu.Unlock()

	var cmds []tea.Cmd
	for _, fn := range listeners {
		if out := fn(msg); out != nil {
			cmds = append(cmds, msgCmd(out))
		}
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

func msgCmd(msg tea.Msg) tea.Cmd { return func() tea.Msg { return msg } }
