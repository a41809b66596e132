// Package preset loads timer definitions from YAML files.
//
//	timers:
//	  - name: Tea
//	    category: Kitchen
//	    duration: 3m        # or whole seconds: 180
//	    halfway_alert: true
package preset

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/alexanderramin/chrono/internal/domain"
	"gopkg.in/yaml.v3"
)

// Timer is one preset entry. Duration is in seconds.
type Timer struct {
	Name         string  `yaml:"name"`
	Category     string  `yaml:"category"`
	Duration     Seconds `yaml:"duration"`
	HalfwayAlert bool    `yaml:"halfway_alert,omitempty"`
}

type presetFile struct {
	Timers []Timer `yaml:"timers"`
}

// Seconds accepts either an integer or a Go duration string ("90s", "2m30s").
type Seconds int

func (s *Seconds) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a number or a duration string", node.Line)
	}
	if n, err := strconv.Atoi(node.Value); err == nil {
		*s = Seconds(n)
		return nil
	}
	d, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid duration %q", node.Line, node.Value)
	}
	if d%time.Second != 0 {
		return fmt.Errorf("line %d: duration %q is not a whole number of seconds", node.Line, node.Value)
	}
	*s = Seconds(d / time.Second)
	return nil
}

// Parse decodes and validates a preset document. Every invalid entry is
// reported.
func Parse(data []byte) ([]Timer, error) {
	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse preset yaml: %w", err)
	}
	if len(file.Timers) == 0 {
		return nil, fmt.Errorf("preset defines no timers")
	}

	var errs []error
	for i, t := range file.Timers {
		if err := domain.ValidateTimerInput(t.Name, t.Category, int(t.Duration)); err != nil {
			errs = append(errs, fmt.Errorf("timer %d (%q): %w", i+1, t.Name, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return file.Timers, nil
}

// Load reads and parses the preset file at path.
func Load(path string) ([]Timer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset file: %w", err)
	}
	timers, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return timers, nil
}

// Save writes timers as a preset file, creating parent directories.
func Save(path string, timers []Timer) error {
	data, err := yaml.Marshal(presetFile{Timers: timers})
	if err != nil {
		return fmt.Errorf("marshal preset yaml: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create preset directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write preset file: %w", err)
	}
	return nil
}

// FromTimers converts live timers back into preset entries.
func FromTimers(timers []domain.Timer) []Timer {
	out := make([]Timer, 0, len(timers))
	for _, t := range timers {
		out = append(out, Timer{
			Name:         t.Name,
			Category:     t.Category,
			Duration:     Seconds(t.Duration),
			HalfwayAlert: t.HalfwayAlert,
		})
	}
	return out
}

// Adder creates timers; service.TimerService satisfies it.
type Adder interface {
	Add(ctx context.Context, name, category string, duration int, halfwayAlert bool) (domain.Timer, error)
}

// Apply adds every preset timer in order and returns the created timers.
func Apply(ctx context.Context, a Adder, timers []Timer) ([]domain.Timer, error) {
	created := make([]domain.Timer, 0, len(timers))
	for _, t := range timers {
		timer, err := a.Add(ctx, t.Name, t.Category, int(t.Duration), t.HalfwayAlert)
		if err != nil {
			return created, fmt.Errorf("adding preset timer %q: %w", t.Name, err)
		}
		created = append(created, timer)
	}
	return created, nil
}

// Sample is written by "chrono preset init".
var Sample = []Timer{
	{Name: "Tea", Category: "Kitchen", Duration: 180},
	{Name: "Eggs", Category: "Kitchen", Duration: 420, HalfwayAlert: true},
	{Name: "Plank", Category: "Workout", Duration: 60},
	{Name: "Rest", Category: "Workout", Duration: 30},
}
