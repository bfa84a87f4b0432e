package helper

import (
	"fmt"
	"strings"
)

// FormatTime renders a nullable total time. A nil time is a DNF.
func FormatTime(t *float64) string {
	if t == nil {
		return "DNF"
	}
	return fmt.Sprintf("%.3f", *t)
}

// FormatGap renders a gap to a reference entrant. The leader has no gap.
func FormatGap(gap *float64) string {
	if gap == nil {
		return "-"
	}
	return fmt.Sprintf("+%.3f", *gap)
}

// FormatGapValue renders a non-nullable gap where zero means leader.
func FormatGapValue(gap float64) string {
	if gap == 0 {
		return "-"
	}
	return fmt.Sprintf("+%.3f", gap)
}

// FormatPenalty renders a cone count the way timing boards do ("+2"), or
// an empty string for a clean run.
func FormatPenalty(cones int) string {
	if cones == 0 {
		return ""
	}
	return fmt.Sprintf("+%d", cones)
}

func SecondsToMinutes(seconds float64) string {
	if seconds <= 0 {
		return "-"
	}
	minutes := int(seconds / 60)
	seconds = seconds - float64(minutes*60)
	milliseconds := int((seconds - float64(int(seconds))) * 1000)
	return fmt.Sprintf("%02d:%02d.%03d", minutes, int(seconds), milliseconds)
}

// GetDriverCodeName shortens a driver name to a three-letter code for
// narrow table columns.
func GetDriverCodeName(name string) string {
	if name == "" {
		return ""
	}
	words := strings.Split(name, " ")
	code := string(words[0][0])
	if len(words) > 1 {
		if len(words[1]) > 2 {
			code += words[1][:2]
		} else {
			code += words[1]
		}
	} else {
		if len(words[0]) > 2 {
			code += words[0][1:3]
		} else {
			code += words[0]
		}
	}
	return strings.ToUpper(code)
}
