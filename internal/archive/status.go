package archive

import (
	"strconv"
	"strings"
	"time"
)

// Status is the retention stage of a file case, derived from its year.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
	StatusArchive  Status = "Archive"
)

// earliestYear is the oldest year accepted as a real file year.
const earliestYear = 1980

// StatusFor derives the status of a file from its year text at now.
// Years that are empty, unparsable or outside [1980, now+1] count as the
// current year.
func StatusFor(year string, now time.Time) Status {
	current := now.Year()

	fileYear := current
	if y, ok := leadingInt(year); ok && y >= earliestYear && y <= current+1 {
		fileYear = y
	}

	switch age := current - fileYear; {
	case age <= 7:
		return StatusActive
	case age <= 10:
		return StatusInactive
	default:
		return StatusArchive
	}
}

// leadingInt parses the optionally signed decimal prefix of s after
// trimming, so "2019 (old)" yields 2019.
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
