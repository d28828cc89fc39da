package defs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultLibrary(t *testing.T) {
	lib, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}
	if len(lib.Waves) == 0 {
		t.Fatal("expected embedded waves")
	}
	if len(lib.Level.SpawnPoints) == 0 {
		t.Error("expected embedded spawn points")
	}

	archer, err := lib.Tower("archer")
	if err != nil {
		t.Fatalf("archer not found: %v", err)
	}
	ups := archer.AvailableUpgrades()
	if len(ups) != 2 {
		t.Fatalf("archer: expected 2 upgrades, got %d", len(ups))
	}
	if ups[0].ID != "sniper" || ups[1].ID != "frost" {
		t.Errorf("archer upgrades: expected [sniper frost], got [%s %s]", ups[0].ID, ups[1].ID)
	}
	if lib.TowerOrder[0] != "archer" {
		t.Errorf("expected build order to follow the file, got %v", lib.TowerOrder)
	}

	var buildable []string
	for _, def := range lib.BuildableTowers() {
		buildable = append(buildable, def.ID)
	}
	if strings.Join(buildable, ",") != "archer,brawler" {
		t.Errorf("expected upgrade-only towers left out of the build menu, got %v", buildable)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	content := `
defaultEnemy: grunt
enemies:
  - id: grunt
    kind: basic
towers:
  - id: plain
  - id: slower
    slow: {}
waves:
  - enemyCount: 3
`
	path := filepath.Join(t.TempDir(), "defs.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test definitions: %v", err)
	}

	lib, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	grunt := lib.Enemies["grunt"]
	if grunt.MaxHealth != 100 || grunt.MoveSpeed != 3 {
		t.Errorf("grunt: expected defaults 100/3, got %v/%v", grunt.MaxHealth, grunt.MoveSpeed)
	}

	plain := lib.Towers["plain"]
	if plain.Kind != TowerRanged || plain.Range != 5 || plain.Damage != 10 || plain.Cooldown != 1 {
		t.Errorf("plain: unexpected defaults %+v", plain)
	}
	if !plain.CanUpgrade || len(plain.AvailableUpgrades()) != 0 {
		t.Errorf("plain: expected upgradable with no options")
	}

	slower := lib.Towers["slower"]
	if slower.Slow == nil || slower.Slow.Multiplier != 0.5 || slower.Slow.Duration != 3 {
		t.Errorf("slower: expected slow defaults 3s/0.5, got %+v", slower.Slow)
	}

	w := lib.Waves[0]
	if w.EnemyCount != 3 || w.SpawnInterval != 1 || w.GoldMultiplier != 1 || w.HealthMultiplier != 1 || w.SpeedMultiplier != 1 {
		t.Errorf("wave: unexpected defaults %+v", w)
	}
	enemy, err := lib.WaveEnemy(w)
	if err != nil || enemy.ID != "grunt" {
		t.Errorf("wave enemy: expected default grunt, got %q (%v)", enemy.ID, err)
	}
	if got := w.TotalDuration(); got != 3 {
		t.Errorf("TotalDuration: expected 3, got %v", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
		unknown bool
	}{
		{
			name: "dangling upgrade",
			content: `
towers:
  - id: a
    upgrades: [missing]
`,
			wantErr: "missing",
			unknown: true,
		},
		{
			name: "too many upgrades",
			content: `
towers:
  - id: a
    upgrades: [b, c, d]
  - id: b
  - id: c
  - id: d
`,
			wantErr: "at most 2",
		},
		{
			name: "duplicate enemy",
			content: `
enemies:
  - id: x
  - id: x
`,
			wantErr: "duplicate enemy",
		},
		{
			name: "wave without enemy",
			content: `
waves:
  - enemyCount: 1
`,
			wantErr: "wave 1",
			unknown: true,
		},
		{
			name: "slow multiplier out of range",
			content: `
towers:
  - id: a
    slow: {multiplier: 1.5}
`,
			wantErr: "slow multiplier",
		},
		{
			name: "unknown enemy kind",
			content: `
enemies:
  - id: x
    kind: dragon
`,
			wantErr: "unknown kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
			if tt.unknown && !errors.Is(err, ErrUnknownDefinition) {
				t.Errorf("expected ErrUnknownDefinition, got %v", err)
			}
		})
	}
}

func TestBaseGoldForKind(t *testing.T) {
	tests := map[EnemyKind]int{
		EnemyBasic:     20,
		EnemyAttacking: 30,
		EnemyZombie:    40,
		EnemyBoss:      100,
		"unknown":      20,
	}
	for kind, want := range tests {
		if got := BaseGoldForKind(kind); got != want {
			t.Errorf("BaseGoldForKind(%q): expected %d, got %d", kind, want, got)
		}
	}
}
