// internal/app/tower_management.go
package app

import (
	"errors"
	"fmt"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/types"
)

var (
	ErrUnknownSlot      = errors.New("unknown tower slot")
	ErrSlotOccupied     = errors.New("tower slot is occupied")
	ErrUnknownTower     = errors.New("unknown tower")
	ErrInsufficientGold = errors.New("not enough gold")
)

// PlaceTower builds the tower definition towerID on a free slot.
func (g *Game) PlaceTower(slotID int, towerID string) (types.EntityID, error) {
	if err := g.canPlaceTower(slotID); err != nil {
		return 0, err
	}
	def, err := g.Library.Tower(towerID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnknownTower, err)
	}
	if !g.Ledger.Spend(def.Cost) {
		g.message(fmt.Sprintf("Not enough gold for %s (%d)", def.Name, def.Cost), true)
		return 0, fmt.Errorf("%s costs %d, have %d: %w", def.ID, def.Cost, g.Ledger.Gold(), ErrInsufficientGold)
	}

	slot := g.ECS.Slot(slotID)
	id := g.ECS.NewEntity()
	g.ECS.Towers[id] = component.NewTower(id, slotID, slot.Position, def)
	slot.TowerID = id

	g.logger.Printf("Tower: placed %s #%d on slot %d for %d gold", def.ID, id, slotID, def.Cost)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: event.TowerData{ID: id, SlotID: slotID, DefID: def.ID}})
	return id, nil
}

// UpgradeTower switches a tower to one of its upgrade branches and charges
// the branch cost.
func (g *Game) UpgradeTower(id types.EntityID, option int) error {
	if g.GameOver() {
		return ErrGameOver
	}
	tower, ok := g.ECS.Towers[id]
	if !ok || !tower.Active {
		return fmt.Errorf("tower #%d: %w", id, ErrUnknownTower)
	}
	options := tower.Def.AvailableUpgrades()
	if option < 0 || option >= len(options) {
		return fmt.Errorf("tower #%d (%s) option %d of %d: %w", id, tower.Def.ID, option, len(options), component.ErrInvalidUpgrade)
	}
	cost := options[option].Cost
	if !g.Ledger.Spend(cost) {
		g.message(fmt.Sprintf("Not enough gold for %s (%d)", options[option].Name, cost), true)
		return fmt.Errorf("upgrade to %s costs %d, have %d: %w", options[option].ID, cost, g.Ledger.Gold(), ErrInsufficientGold)
	}
	def, err := tower.Upgrade(option)
	if err != nil {
		g.Ledger.Add(cost)
		return err
	}

	g.logger.Printf("Tower: #%d upgraded to %s for %d gold", id, def.ID, cost)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: event.TowerData{ID: id, SlotID: tower.SlotID, DefID: def.ID}})
	return nil
}

// RemoveTower sells nothing back: the slot is freed and the gold is gone.
func (g *Game) RemoveTower(id types.EntityID) error {
	if g.GameOver() {
		return ErrGameOver
	}
	tower, ok := g.ECS.Towers[id]
	if !ok || !tower.Active {
		return fmt.Errorf("tower #%d: %w", id, ErrUnknownTower)
	}
	tower.Active = false
	tower.ResetCombat()
	g.ECS.ReleaseSlot(tower)
	delete(g.ECS.Towers, id)

	// Attackers holding this tower rescan on their next update.
	for _, e := range g.ECS.Enemies {
		if e.TargetTower == id {
			e.TargetTower = 0
		}
	}

	g.logger.Printf("Tower: removed #%d from slot %d", id, tower.SlotID)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerRemoved, Data: event.TowerData{ID: id, SlotID: tower.SlotID, DefID: tower.Def.ID}})
	return nil
}

// TowerAt returns the tower standing on a slot.
func (g *Game) TowerAt(slotID int) (*component.Tower, bool) {
	slot := g.ECS.Slot(slotID)
	if slot == nil || slot.Free() {
		return nil, false
	}
	tower, ok := g.ECS.Towers[slot.TowerID]
	return tower, ok
}

func (g *Game) canPlaceTower(slotID int) error {
	if g.GameOver() {
		return ErrGameOver
	}
	slot := g.ECS.Slot(slotID)
	if slot == nil {
		return fmt.Errorf("slot %d: %w", slotID, ErrUnknownSlot)
	}
	if !slot.Free() {
		return fmt.Errorf("slot %d holds tower #%d: %w", slotID, slot.TowerID, ErrSlotOccupied)
	}
	return nil
}

func (g *Game) message(text string, warning bool) {
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.StatusMessage,
		Data: event.MessageData{Text: text, Duration: config.StatusMessageDuration, Warning: warning},
	})
}
