// internal/system/ledger.go
package system

import "go-wave-defense/internal/event"

// Ledger holds the player's gold.
type Ledger struct {
	gold            int
	initial         int
	eventDispatcher *event.Dispatcher
}

func NewLedger(initial int, eventDispatcher *event.Dispatcher) *Ledger {
	return &Ledger{gold: initial, initial: initial, eventDispatcher: eventDispatcher}
}

func (l *Ledger) Gold() int {
	return l.gold
}

func (l *Ledger) CanAfford(cost int) bool {
	return cost <= l.gold
}

// Spend takes cost from the ledger if there is enough gold.
func (l *Ledger) Spend(cost int) bool {
	if cost < 0 || !l.CanAfford(cost) {
		return false
	}
	l.change(-cost)
	return true
}

// Add credits amount. Non-positive amounts are ignored.
func (l *Ledger) Add(amount int) {
	if amount <= 0 {
		return
	}
	l.change(amount)
}

// Reset restores the starting gold.
func (l *Ledger) Reset() {
	l.change(l.initial - l.gold)
}

func (l *Ledger) change(delta int) {
	l.gold += delta
	if l.eventDispatcher != nil {
		l.eventDispatcher.Dispatch(event.Event{Type: event.GoldChanged, Data: event.GoldData{Gold: l.gold, Delta: delta}})
	}
}
