package render

import (
	"fmt"
	"image/color"
	"math"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/types"
	"go-wave-defense/internal/utils"
	"go-wave-defense/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	slotRadius     = 0.9
	towerRadius    = 0.7
	enemyRadius    = 0.45
	bossRadius     = 0.8
	healthBarWidth = 1.2
	turnRate       = 10.0 // Доля поворота ствола за секунду
)

// WorldRenderer draws the level and its entities from the top.
type WorldRenderer struct {
	proj         Projection
	colors       *WorldColors
	fontFace     font.Face
	screenWidth  int
	screenHeight int
	mapImage     *ebiten.Image // Предрендеренная карта
	facing       map[types.EntityID]float64
}

func NewWorldRenderer(proj Projection, colors *WorldColors, face font.Face, screenWidth, screenHeight int) *WorldRenderer {
	return &WorldRenderer{
		proj:         proj,
		colors:       colors,
		fontFace:     face,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		facing:       make(map[types.EntityID]float64),
	}
}

// Projection returns the mapping used for drawing, for input hit tests.
func (r *WorldRenderer) Projection() Projection {
	return r.proj
}

// RenderMapImage pre-renders the static parts of a level.
func (r *WorldRenderer) RenderMapImage(level defs.LevelDefinition) {
	if r.mapImage == nil {
		r.mapImage = ebiten.NewImage(r.screenWidth, r.screenHeight)
	}
	img := r.mapImage
	img.Fill(r.colors.Background)

	b := level.Bounds
	x0, y0 := r.proj.ToScreen(geom.V(b.MinX, 0, b.MinZ))
	x1, y1 := r.proj.ToScreen(geom.V(b.MaxX, 0, b.MaxZ))
	vector.DrawFilledRect(img, x0, y0, x1-x0, y1-y0, r.colors.Ground, false)

	for _, o := range level.Obstacles {
		cx, cy := r.proj.ToScreen(o.Center)
		vector.DrawFilledCircle(img, cx, cy, r.proj.Length(o.Radius), r.colors.Obstacle, true)
	}
	for _, sp := range level.SpawnPoints {
		cx, cy := r.proj.ToScreen(sp)
		vector.StrokeCircle(img, cx, cy, r.proj.Length(0.8), 2, r.colors.Spawn, true)
	}
}

// Draw renders one frame. selectedSlot is -1 when nothing is selected.
func (r *WorldRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS, objective geom.Vec3, selectedSlot int, deltaTime float64) {
	if r.mapImage != nil {
		screen.DrawImage(r.mapImage, nil)
	} else {
		screen.Fill(r.colors.Background)
	}

	ox, oy := r.proj.ToScreen(objective)
	vector.DrawFilledCircle(screen, ox, oy, r.proj.Length(0.8), r.colors.Objective, true)

	for _, slot := range ecs.Slots {
		sx, sy := r.proj.ToScreen(slot.Position)
		width := float32(1)
		clr := r.colors.Slot
		if slot.ID == selectedSlot {
			width = 3
			clr = r.colors.TowerStroke
		}
		vector.StrokeCircle(screen, sx, sy, r.proj.Length(slotRadius), width, clr, true)
		if r.fontFace != nil && slot.Free() {
			text.Draw(screen, fmt.Sprint(slot.ID+1), r.fontFace, int(sx)-3, int(sy)+4, r.colors.Slot)
		}
	}

	for _, id := range ecs.SortedTowerIDs() {
		r.drawTower(screen, ecs, ecs.Towers[id], selectedSlot, deltaTime)
	}
	for _, id := range ecs.SortedEnemyIDs() {
		r.drawEnemy(screen, ecs.Enemies[id])
	}
	r.drawEffects(screen, ecs)

	// Чистим углы удалённых башен
	for id := range r.facing {
		if _, ok := ecs.Towers[id]; !ok {
			delete(r.facing, id)
		}
	}
}

func (r *WorldRenderer) drawTower(screen *ebiten.Image, ecs *entity.ECS, t *component.Tower, selectedSlot int, deltaTime float64) {
	if !t.Active {
		return
	}
	x, y := r.proj.ToScreen(t.Position)
	radius := r.proj.Length(towerRadius)
	fill := r.colors.TowerColor(string(t.Def.Kind))
	if t.State == component.TowerIdle {
		fill = DarkenColor(fill)
	}

	if t.SlotID == selectedSlot {
		vector.StrokeCircle(screen, x, y, r.proj.Length(t.Def.Range), 1, r.colors.TowerStroke, true)
	}
	vector.DrawFilledCircle(screen, x, y, radius, fill, true)
	vector.StrokeCircle(screen, x, y, radius, 2, r.colors.TowerStroke, true)

	// Ствол плавно поворачивается к цели
	angle := r.facing[t.ID]
	if target, ok := ecs.Enemies[t.Target]; ok && target.Alive {
		want := utils.Heading(t.Position.X, t.Position.Z, target.Position.X, target.Position.Z)
		angle = utils.LerpAngle(angle, want, math.Min(1, turnRate*deltaTime))
		r.facing[t.ID] = angle
	}
	bx := x + float32(math.Cos(angle))*radius*1.4
	by := y + float32(math.Sin(angle))*radius*1.4
	vector.StrokeLine(screen, x, y, bx, by, 3, r.colors.TowerStroke, true)

	if t.Destructible() && t.Health < t.Def.MaxHealth {
		r.drawHealthBar(screen, x, y-radius-6, t.Health/t.Def.MaxHealth, r.colors.TowerStroke)
	}
}

func (r *WorldRenderer) drawEnemy(screen *ebiten.Image, e *component.Enemy) {
	if !e.Alive {
		return
	}
	x, y := r.proj.ToScreen(e.Position)
	// Height from a jump lifts the sprite on screen.
	y -= r.proj.Length(e.Position.Y)

	size := enemyRadius
	if e.Kind == defs.EnemyBoss {
		size = bossRadius
	}
	radius := r.proj.Length(size)

	var fill color.RGBA
	switch {
	case e.Effects.Stunned():
		fill = r.colors.Stunned
	case e.Effects.Slowed():
		fill = r.colors.Slowed
	default:
		fill = r.colors.Enemy
	}
	if e.HitFlash > 0 {
		fill = MixColor(fill, color.RGBA{255, 255, 255, 255}, e.HitFlash/component.HitFlashDuration)
	}
	vector.DrawFilledCircle(screen, x, y, radius, fill, true)
	if e.AttacksTowers() {
		vector.StrokeCircle(screen, x, y, radius, 2, DarkenColor(r.colors.Enemy), true)
	}
	if e.Health < e.MaxHealth {
		r.drawHealthBar(screen, x, y-radius-5, e.Health/e.MaxHealth, r.colors.Enemy)
	}
}

func (r *WorldRenderer) drawHealthBar(screen *ebiten.Image, cx, top float32, ratio float64, clr color.RGBA) {
	width := r.proj.Length(healthBarWidth)
	left := cx - width/2
	vector.DrawFilledRect(screen, left, top, width, 3, DarkenColor(clr), false)
	vector.DrawFilledRect(screen, left, top, width*float32(math.Max(0, ratio)), 3, clr, false)
}

func (r *WorldRenderer) drawEffects(screen *ebiten.Image, ecs *entity.ECS) {
	for _, l := range ecs.Lasers {
		x0, y0 := r.proj.ToScreen(l.From)
		x1, y1 := r.proj.ToScreen(l.To)
		clr := r.colors.Objective
		clr.A = uint8(255 * (1 - l.Progress()))
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, clr, true)
	}
	for _, b := range ecs.Blasts {
		x, y := r.proj.ToScreen(b.Center)
		clr := r.colors.TowerStroke
		clr.A = uint8(200 * (1 - b.Progress()))
		vector.StrokeCircle(screen, x, y, r.proj.Length(b.Radius), 2, clr, true)
	}
}
