package utils

import (
	"sync"
	"time"
	"unicode/utf8"
)

// RuneByteOffsets returns the byte offset of every rune index in s, with one
// extra trailing entry equal to len(s) so that end indices map cleanly.
func RuneByteOffsets(s string) []int {
	offsets := make([]int, 0, utf8.RuneCountInString(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	return append(offsets, len(s))
}

// Debouncer coalesces bursts of calls into one call after a quiet period.
type Debouncer struct {
	mutex sync.Mutex
	timer *time.Timer
}

// Debounce schedules fn after duration, cancelling any call still pending.
func (d *Debouncer) Debounce(duration time.Duration, fn func()) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(duration, func() {
		d.mutex.Lock()
		d.timer = nil
		d.mutex.Unlock()
		fn()
	})
}

// Stop cancels a pending call.
func (d *Debouncer) Stop() {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
