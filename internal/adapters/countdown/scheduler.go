package countdown

import (
	"time"

	"github.com/Aut-Labs/nova-showcase/internal/usecase"
)

// TimerScheduler schedules callbacks on the runtime timer
type TimerScheduler struct{}

// NewTimerScheduler creates a new TimerScheduler
func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{}
}

// AfterFunc runs fn once after delay. Negative delays fire immediately.
func (s *TimerScheduler) AfterFunc(delay time.Duration, fn func()) func() {
	if delay < 0 {
		delay = 0
	}
	timer := time.AfterFunc(delay, fn)
	return func() { timer.Stop() }
}

var _ usecase.Scheduler = (*TimerScheduler)(nil)
