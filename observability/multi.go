package observability

import "context"

// MultiObserver forwards each event to a fixed group of observers, so a
// binary can attach a log sink next to a custom one. Nil members are dropped
// at construction, keeping dispatch unconditional.
type MultiObserver struct {
	group []Observer
}

// NewMultiObserver creates a MultiObserver over the non-nil members.
func NewMultiObserver(members ...Observer) *MultiObserver {
	m := &MultiObserver{}
	for _, obs := range members {
		if obs != nil {
			m.group = append(m.group, obs)
		}
	}
	return m
}

func (m *MultiObserver) OnEvent(ctx context.Context, event Event) {
	for _, obs := range m.group {
		obs.OnEvent(ctx, event)
	}
}
