package main

import (
	"fmt"
	"time"
)

// formatRate renders count over window as executions per hour
func formatRate(count int, window time.Duration) string {
	hours := window.Hours()
	if hours <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.2f/h", float64(count)/hours)
}

func percentageString(part, total int) string {
	var pct float64
	if total > 0 {
		pct = 100 * float64(part) / float64(total)
	}
	return fmt.Sprintf("%.2f%%", pct)
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%dm %ds", int(d/time.Minute), int(d%time.Minute/time.Second))
	default:
		return fmt.Sprintf("%dh %dm", int(d/time.Hour), int(d%time.Hour/time.Minute))
	}
}
