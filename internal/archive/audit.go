package archive

import (
	"context"
	"fmt"
	"time"

	"github.com/InfoRubix/filecase-tracking-management-system/pkg/db/models"
)

// LogTimeFormat is the LOG datetime layout, day first.
const LogTimeFormat = "02/01/2006 15:04"

// LogInput is one activity line to append to LOG.
type LogInput struct {
	RefFile  string `json:"refFile"`
	Activity string `json:"activity"`
	Location string `json:"location"`
	UpdateBy string `json:"updateBy"`
}

// AddLog appends an activity entry. Its id is the current entry count plus
// one and its timestamp is the service clock in the audit time zone.
func (s *Service) AddLog(ctx context.Context, input LogInput) error {
	count, err := s.store.CountLogs(ctx)
	if err != nil {
		return fmt.Errorf("failed to count log entries: %w", err)
	}

	entry := &models.LogEntry{
		ID:        count + 1,
		Timestamp: s.now().In(s.location).Format(LogTimeFormat),
		RefFile:   input.RefFile,
		Activity:  input.Activity,
		Location:  input.Location,
		UpdateBy:  input.UpdateBy,
	}
	if err := s.store.AppendLog(ctx, entry); err != nil {
		return fmt.Errorf("failed to append log entry: %w", err)
	}

	s.logger.Debug("Logged %q for %s by %s", entry.Activity, entry.RefFile, entry.UpdateBy)
	return nil
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func zoneOrUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
