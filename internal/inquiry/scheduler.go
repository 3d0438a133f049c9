package inquiry

import "time"

// Timer is a pending one-shot completion
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d on its own goroutine
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type systemScheduler struct{}

func (systemScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SystemScheduler schedules on the runtime timer wheel
func SystemScheduler() Scheduler {
	return systemScheduler{}
}
