// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/geom"
)

type ECS struct {
	GameTime  float64
	NextID    types.EntityID
	Enemies   map[types.EntityID]*component.Enemy
	Towers    map[types.EntityID]*component.Tower
	Slots     []*component.Slot
	Wave      *component.Wave
	GameState component.GameState

	// Attack effects for the renderer, aged by the visual effect system.
	Lasers []*component.Laser
	Blasts []*component.Blast
}

func NewECS() *ECS {
	return &ECS{
		NextID:    1,
		Enemies:   make(map[types.EntityID]*component.Enemy),
		Towers:    make(map[types.EntityID]*component.Tower),
		Wave:      component.NewWave(),
		GameState: component.GameRunning,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// SetSlots creates one free slot per position.
func (ecs *ECS) SetSlots(positions []geom.Vec3) {
	ecs.Slots = make([]*component.Slot, len(positions))
	for i, p := range positions {
		ecs.Slots[i] = &component.Slot{ID: i, Position: p}
	}
}

// Slot returns the slot with the given id, or nil.
func (ecs *ECS) Slot(id int) *component.Slot {
	if id < 0 || id >= len(ecs.Slots) {
		return nil
	}
	return ecs.Slots[id]
}

// ReleaseSlot frees the slot a tower occupies.
func (ecs *ECS) ReleaseSlot(tower *component.Tower) {
	if slot := ecs.Slot(tower.SlotID); slot != nil && slot.TowerID == tower.ID {
		slot.TowerID = 0
	}
}

// EnemiesWithin returns the living enemies within radius of p, ordered by id.
func (ecs *ECS) EnemiesWithin(p geom.Vec3, radius float64) []*component.Enemy {
	var found []*component.Enemy
	for _, e := range ecs.Enemies {
		if e.Alive && e.Position.Dist(p) <= radius {
			found = append(found, e)
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].ID < found[j].ID })
	return found
}

// TowersWithin returns the active towers within radius of p, ordered by id.
func (ecs *ECS) TowersWithin(p geom.Vec3, radius float64) []*component.Tower {
	var found []*component.Tower
	for _, t := range ecs.Towers {
		if t.Active && t.Position.Dist(p) <= radius {
			found = append(found, t)
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].ID < found[j].ID })
	return found
}

// SortedEnemyIDs returns every enemy id in ascending order so systems
// iterate deterministically.
func (ecs *ECS) SortedEnemyIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Enemies))
	for id := range ecs.Enemies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// SortedTowerIDs returns every tower id in ascending order.
func (ecs *ECS) SortedTowerIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Towers))
	for id := range ecs.Towers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Purge removes dead enemies and inactive towers.
func (ecs *ECS) Purge() {
	for id, e := range ecs.Enemies {
		if !e.Alive {
			delete(ecs.Enemies, id)
		}
	}
	for id, t := range ecs.Towers {
		if !t.Active {
			ecs.ReleaseSlot(t)
			delete(ecs.Towers, id)
		}
	}
}

// Clear drops every entity and frees every slot. Ids keep increasing.
func (ecs *ECS) Clear() {
	ecs.GameTime = 0
	ecs.Enemies = make(map[types.EntityID]*component.Enemy)
	ecs.Towers = make(map[types.EntityID]*component.Tower)
	for _, s := range ecs.Slots {
		s.TowerID = 0
	}
	ecs.Wave = component.NewWave()
	ecs.GameState = component.GameRunning
	ecs.Lasers = nil
	ecs.Blasts = nil
}
