package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/chrono/internal/domain"
	"github.com/spf13/pflag"
)

// timerSpec is one --timer NAME:SECONDS:CATEGORY[:halfway] value.
type timerSpec struct {
	Name         string
	Duration     int
	Category     string
	HalfwayAlert bool
}

// parseTimerSpec parses NAME:DURATION:CATEGORY[:halfway]. DURATION is whole
// seconds or a Go duration such as 2m30s.
func parseTimerSpec(s string) (timerSpec, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return timerSpec{}, fmt.Errorf("timer %q: want NAME:SECONDS:CATEGORY[:halfway]", s)
	}
	seconds, err := parseSeconds(parts[1])
	if err != nil {
		return timerSpec{}, fmt.Errorf("timer %q: %w", s, err)
	}
	spec := timerSpec{
		Name:     strings.TrimSpace(parts[0]),
		Duration: seconds,
		Category: strings.TrimSpace(parts[2]),
	}
	if len(parts) == 4 {
		if flag := strings.TrimSpace(parts[3]); flag != "halfway" {
			return timerSpec{}, fmt.Errorf("timer %q: unknown option %q", s, flag)
		}
		spec.HalfwayAlert = true
	}
	if err := domain.ValidateTimerInput(spec.Name, spec.Category, spec.Duration); err != nil {
		return timerSpec{}, fmt.Errorf("timer %q: %w", s, err)
	}
	return spec, nil
}

// parseSeconds accepts "90" or "1m30s".
func parseSeconds(s string) (int, error) {
	if n, err := domain.ParseDuration(s); err == nil {
		return n, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil || d%time.Second != 0 {
		return 0, fmt.Errorf("%w: duration %q must be whole seconds or like 2m30s", domain.ErrInvalidTimer, s)
	}
	n := int(d / time.Second)
	if err := domain.ValidateDuration(n); err != nil {
		return 0, err
	}
	return n, nil
}

// timerSpecList collects repeated --timer flags.
type timerSpecList []timerSpec

var _ pflag.Value = (*timerSpecList)(nil)

func (l *timerSpecList) Set(s string) error {
	spec, err := parseTimerSpec(s)
	if err != nil {
		return err
	}
	*l = append(*l, spec)
	return nil
}

func (l *timerSpecList) String() string {
	out := make([]string, len(*l))
	for i, s := range *l {
		out[i] = fmt.Sprintf("%s:%d:%s", s.Name, s.Duration, s.Category)
		if s.HalfwayAlert {
			out[i] += ":halfway"
		}
	}
	return "[" + strings.Join(out, ",") + "]"
}

func (l *timerSpecList) Type() string { return "timer" }
