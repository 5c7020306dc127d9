package scheduler

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseDuration parses the compact "1h30m", "45s", "2d" duration syntax
// used for offset/after/during attributes throughout the configuration
// (spec.md §8, §7). An empty string yields zero. Recognised unit
// suffixes are s(econds), m(inutes), h(ours) and d(ays); bare digits are
// seconds.
func ParseDuration(text string) (int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, nil
	}
	neg := false
	if strings.HasPrefix(text, "-") {
		neg = true
		text = text[1:]
	}
	var total int64
	num := strings.Builder{}
	flush := func(mult int64) error {
		if num.Len() == 0 {
			return nil
		}
		n, err := strconv.ParseInt(num.String(), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: duration %q", ErrParse, text)
		}
		total += n * mult
		num.Reset()
		return nil
	}
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			num.WriteRune(r)
		case r == 'd':
			if err := flush(86400); err != nil {
				return 0, err
			}
		case r == 'h':
			if err := flush(3600); err != nil {
				return 0, err
			}
		case r == 'm':
			if err := flush(60); err != nil {
				return 0, err
			}
		case r == 's':
			if err := flush(1); err != nil {
				return 0, err
			}
		default:
			return 0, fmt.Errorf("%w: duration %q", ErrParse, text)
		}
	}
	if err := flush(1); err != nil {
		return 0, err
	}
	if neg {
		total = -total
	}
	return total, nil
}

// FormatDuration renders seconds back to the compact "XdYhZmWs" form,
// omitting zero components, "0s" for zero itself.
func FormatDuration(seconds int64) string {
	if seconds == 0 {
		return "0s"
	}
	neg := seconds < 0
	if neg {
		seconds = -seconds
	}
	d := seconds / 86400
	seconds %= 86400
	h := seconds / 3600
	seconds %= 3600
	m := seconds / 60
	s := seconds % 60

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	if d > 0 {
		fmt.Fprintf(&b, "%dd", d)
	}
	if h > 0 {
		fmt.Fprintf(&b, "%dh", h)
	}
	if m > 0 {
		fmt.Fprintf(&b, "%dm", m)
	}
	if s > 0 || b.Len() == 0 || (neg && b.Len() == 1) {
		fmt.Fprintf(&b, "%ds", s)
	}
	return b.String()
}
