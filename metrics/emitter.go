package metrics

import "sync"

//go:generate counterfeiter . Emitter

type Emitter interface {
	Counter(name string) Counter
	Timer(name string) Timer
}

// Tally keeps running counts in memory so a session can report them when it
// ends.
type Tally struct {
	mu     sync.Mutex
	counts map[string]int
}

func NewTally() *Tally {
	return &Tally{
		counts: map[string]int{},
	}
}

func (t *Tally) Counter(name string) Counter {
	return &counter{
		name:  name,
		tally: t,
	}
}

func (t *Tally) Timer(name string) Timer {
	return &timer{
		name: name,
	}
}

func (t *Tally) Count(name string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.counts[name]
}

func (t *Tally) add(name string, n int) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.counts[name] += n
	return t.counts[name]
}
