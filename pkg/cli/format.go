package cli

import (
	"fmt"
	"time"
)

// FormatDuration renders d for terminal output: milliseconds below one
// second, tenths of a second below one minute, then minutes and seconds.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		m := d / time.Minute
		rest := d - m*time.Minute
		return fmt.Sprintf("%dm%.1fs", m, rest.Seconds())
	}
}

var byteUnits = []string{"KB", "MB", "GB"}

// FormatBytes renders a byte count with binary units, e.g. "1.50 KB".
func FormatBytes(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	v := float64(n) / 1024
	unit := 0
	for v >= 1024 && unit < len(byteUnits)-1 {
		v /= 1024
		unit++
	}
	return fmt.Sprintf("%.2f %s", v, byteUnits[unit])
}

// FormatBytesInt is FormatBytes for len() results.
func FormatBytesInt(n int) string {
	return FormatBytes(int64(n))
}
