package domain

type TimerStatus string

const (
	TimerIdle      TimerStatus = "idle"
	TimerRunning   TimerStatus = "running"
	TimerPaused    TimerStatus = "paused"
	TimerCompleted TimerStatus = "completed"
)

// ValidTimerStatuses is the canonical set of accepted status strings.
var ValidTimerStatuses = map[string]bool{
	"idle": true, "running": true, "paused": true, "completed": true,
}

// ParseTimerStatus converts s into a TimerStatus, reporting whether it is known.
func ParseTimerStatus(s string) (TimerStatus, bool) {
	if !ValidTimerStatuses[s] {
		return "", false
	}
	return TimerStatus(s), true
}
