package archive

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	fileIDPattern      = regexp.MustCompile(`^ID(\d+)$`)
	rackEntryIDPattern = regexp.MustCompile(`^IDK(\d+)$`)
)

// NextFileID returns ID<max+1> over every id shaped like ID<n>.
func NextFileID(ids []string) string {
	return fmt.Sprintf("ID%d", maxSuffix(ids, fileIDPattern)+1)
}

// NextRackEntryID returns IDK<max+1> padded to at least three digits over
// every id shaped like IDK<n>.
func NextRackEntryID(ids []string) string {
	return fmt.Sprintf("IDK%03d", maxSuffix(ids, rackEntryIDPattern)+1)
}

// NextLookupID returns the largest id plus one, or 1 for an empty list.
func NextLookupID(ids []int) int {
	highest := 0
	for _, id := range ids {
		if id > highest {
			highest = id
		}
	}
	return highest + 1
}

func maxSuffix(ids []string, pattern *regexp.Regexp) int {
	highest := 0
	for _, id := range ids {
		match := pattern.FindStringSubmatch(strings.TrimSpace(id))
		if match == nil {
			continue
		}
		n, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return highest
}
