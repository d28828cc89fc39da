// internal/records/records.go
package records

import (
	"fmt"
	"log"

	"go-wave-defense/internal/event"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const recordsObject = "records"

// Record is the persisted history of one level.
type Record struct {
	Runs      int `yaml:"runs"`
	BestWave  int `yaml:"bestWave"` // Highest wave cleared, 1-based
	Victories int `yaml:"victories"`
	Defeats   int `yaml:"defeats"`
}

// Tracker keeps a level's Record up to date from game events.
type Tracker struct {
	manager *gdata.Manager // nil keeps records in memory only
	level   string
	record  Record
	logger  *log.Logger
}

// NewTracker loads the stored record for level and subscribes to the events
// that change it. A failed load is logged and starts from an empty record.
func NewTracker(manager *gdata.Manager, level string, dispatcher *event.Dispatcher, logger *log.Logger) *Tracker {
	if level == "" {
		level = "default"
	}
	t := &Tracker{manager: manager, level: level, logger: logger}
	if err := t.load(); err != nil {
		logger.Printf("Records: warning: %v (starting fresh)", err)
	}

	dispatcher.Subscribe(event.WaveStarted, t)
	dispatcher.Subscribe(event.WaveEnded, t)
	dispatcher.Subscribe(event.AllWavesComplete, t)
	dispatcher.Subscribe(event.GameOver, t)
	return t
}

// Record returns a copy of the current record.
func (t *Tracker) Record() Record {
	return t.record
}

func (t *Tracker) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveStarted:
		data, ok := e.Data.(event.WaveData)
		if !ok || data.Index != 0 {
			return
		}
		t.record.Runs++
	case event.WaveEnded:
		data, ok := e.Data.(event.WaveData)
		if !ok || data.Index+1 <= t.record.BestWave {
			return
		}
		t.record.BestWave = data.Index + 1
	case event.AllWavesComplete:
		t.record.Victories++
	case event.GameOver:
		t.record.Defeats++
	default:
		return
	}
	if err := t.save(); err != nil {
		t.logger.Printf("Records: warning: %v", err)
	}
}

func (t *Tracker) load() error {
	if t.manager == nil || !t.manager.ObjectPropExists(recordsObject, t.level) {
		return nil
	}
	data, err := t.manager.LoadObjectProp(recordsObject, t.level)
	if err != nil {
		return fmt.Errorf("failed to load record for %s: %w", t.level, err)
	}
	var r Record
	if err := yaml.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("failed to parse record for %s: %w", t.level, err)
	}
	t.record = r
	return nil
}

func (t *Tracker) save() error {
	if t.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(t.record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	if err := t.manager.SaveObjectProp(recordsObject, t.level, data); err != nil {
		return fmt.Errorf("failed to save record for %s: %w", t.level, err)
	}
	return nil
}
