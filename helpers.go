package sniffkit

import (
	"fmt"
	"math"
	"strings"
)

// Size constants
const (
	KB int64 = 1 << 10
	MB int64 = 1 << 20
	GB int64 = 1 << 30
)

// HeaderHexBytes is how much of a file the diagnostic hex dump covers.
// The dump is presentation-only and never influences detection.
const HeaderHexBytes = 128

// FormatSizeReadable converts a size in bytes to a human-readable string
func FormatSizeReadable(size int64) string {
	if size < KB {
		return fmt.Sprintf("%d B", size)
	}
	if size < MB {
		return formatRounded(float64(size)/float64(KB), "KB")
	}
	if size < GB {
		return formatRounded(float64(size)/float64(MB), "MB")
	}
	return formatRounded(float64(size)/float64(GB), "GB")
}

func formatRounded(value float64, unit string) string {
	// Round to 1 decimal place properly
	rounded := math.Round(value*10) / 10
	if rounded == float64(int(rounded)) {
		return fmt.Sprintf("%.0f %s", rounded, unit)
	}
	return fmt.Sprintf("%.1f %s", rounded, unit)
}

// HeaderHex renders data as lowercase space-separated hex, truncated to
// HeaderHexBytes.
func HeaderHex(data []byte) string {
	if len(data) > HeaderHexBytes {
		data = data[:HeaderHexBytes]
	}
	if len(data) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(len(data) * 3)
	for i, c := range data {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%02x", c)
	}
	return b.String()
}
