package archive

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var leadingDigits = regexp.MustCompile(`^(\d+)`)

// AvailableBoxes lists boxes that are not on any rack: standalone entries
// and boxes referenced by files. Higher numbered boxes come first, which
// approximates newest first.
func (s *Service) AvailableBoxes(ctx context.Context) ([]string, error) {
	entries, err := s.rackEntries(ctx)
	if err != nil {
		return nil, err
	}
	files, err := s.store.ListFiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read files: %w", err)
	}

	assigned := make(map[string]struct{})
	for _, entry := range entries {
		if entry.Kotak != "" && entry.Rack != "" {
			assigned[strings.TrimSpace(entry.Kotak)] = struct{}{}
		}
	}

	seen := make(map[string]struct{})
	boxes := []string{}
	add := func(name string) {
		if name == "" {
			return
		}
		if _, ok := assigned[name]; ok {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		boxes = append(boxes, name)
	}

	for _, entry := range entries {
		if entry.Kotak != "" && strings.TrimSpace(entry.Rack) == "" {
			add(strings.TrimSpace(entry.Kotak))
		}
	}
	for _, file := range files {
		add(strings.TrimSpace(file.Kotak))
	}

	sortBoxes(boxes)
	return boxes, nil
}

// sortBoxes orders by numeric key descending, then by name descending.
func sortBoxes(boxes []string) {
	sort.SliceStable(boxes, func(i, j int) bool {
		a, b := boxKey(boxes[i]), boxKey(boxes[j])
		if a != b {
			return a > b
		}
		return boxes[i] > boxes[j]
	})
}

// boxKey is the number in IDK<n>, else the leading digits, else 0.
func boxKey(name string) int {
	if match := rackEntryIDPattern.FindStringSubmatch(name); match != nil {
		if n, err := strconv.Atoi(match[1]); err == nil {
			return n
		}
	}
	if match := leadingDigits.FindStringSubmatch(name); match != nil {
		if n, err := strconv.Atoi(match[1]); err == nil {
			return n
		}
	}
	if n, ok := leadingInt(name); ok {
		return n
	}
	return 0
}
