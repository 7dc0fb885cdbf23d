package site

import (
	"fmt"
	"time"
)

// LoadGate is the cosmetic delay before the page content replaces the
// loading screen. It does not wait for any section to load.
type LoadGate struct {
	Delay time.Duration
}

// Trigger is the htmx trigger for the one-shot content request.
func (g LoadGate) Trigger() string {
	if g.Delay <= 0 {
		return "load"
	}
	return fmt.Sprintf("load delay:%dms", g.Delay.Milliseconds())
}
