package archive

import (
	"context"
	"fmt"
	"strings"

	"github.com/InfoRubix/filecase-tracking-management-system/pkg/db/models"
)

const systemLocation = "System"

func (s *Service) rackEntries(ctx context.Context) ([]models.RackEntry, error) {
	entries, err := s.store.ListRackEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read rack lookup: %w", err)
	}
	return entries, nil
}

func nextEntryID(entries []models.RackEntry) string {
	ids := make([]string, len(entries))
	for i, entry := range entries {
		ids[i] = entry.ID
	}
	return NextRackEntryID(ids)
}

func (s *Service) appendEntry(ctx context.Context, entries []models.RackEntry, kotak, rack string) (*models.RackEntry, error) {
	entry := &models.RackEntry{ID: nextEntryID(entries), Kotak: kotak, Rack: rack}
	if err := s.store.AppendRackEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to append rack entry: %w", err)
	}
	s.rackChanged()
	return entry, nil
}

func (s *Service) removeEntries(ctx context.Context, seqs []uint) error {
	if err := s.store.DeleteRackEntries(ctx, seqs); err != nil {
		return fmt.Errorf("failed to delete %d rack entries: %w", len(seqs), err)
	}
	s.rackChanged()
	return nil
}

// CreateRack registers an empty rack. The placeholder entry has no box.
func (s *Service) CreateRack(ctx context.Context, rack, createdBy string) (*models.RackEntry, error) {
	rack = strings.TrimSpace(rack)
	if rack == "" {
		return nil, invalid("Rack name is required")
	}

	entries, err := s.rackEntries(ctx)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if strings.TrimSpace(entry.Rack) == rack {
			return nil, conflict("Rack already exists")
		}
	}

	entry, err := s.appendEntry(ctx, entries, "", rack)
	if err != nil {
		return nil, err
	}

	err = s.AddLog(ctx, LogInput{
		RefFile:  "RACK-" + rack,
		Activity: "Rack created",
		Location: systemLocation,
		UpdateBy: defaultString(createdBy, systemActor),
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// DeleteRack removes every entry of rack and returns how many went.
func (s *Service) DeleteRack(ctx context.Context, rack, deletedBy string) (int, error) {
	rack = strings.TrimSpace(rack)
	if rack == "" {
		return 0, invalid("Rack name is required")
	}

	entries, err := s.rackEntries(ctx)
	if err != nil {
		return 0, err
	}

	var seqs []uint
	for _, entry := range entries {
		if strings.TrimSpace(entry.Rack) == rack {
			seqs = append(seqs, entry.Seq)
		}
	}
	if len(seqs) == 0 {
		return 0, notFound("Rack not found")
	}

	if err := s.removeEntries(ctx, seqs); err != nil {
		return 0, err
	}

	err = s.AddLog(ctx, LogInput{
		RefFile:  "RACK-" + rack,
		Activity: "Rack deleted",
		Location: systemLocation,
		UpdateBy: defaultString(deletedBy, systemActor),
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("Deleted rack %s (%d entries)", rack, len(seqs))
	return len(seqs), nil
}

// AddKotak places a box on a rack. It always appends, so a box may end up
// listed on several racks; the rack lookup then reports the latest entry.
func (s *Service) AddKotak(ctx context.Context, rack, kotak, createdBy string) (*models.RackEntry, error) {
	rack = strings.TrimSpace(rack)
	kotak = strings.TrimSpace(kotak)
	if rack == "" || kotak == "" {
		return nil, invalid("Rack and kotak names are required")
	}

	entries, err := s.rackEntries(ctx)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		current := strings.TrimSpace(entry.Rack)
		if strings.TrimSpace(entry.Kotak) == kotak && current != "" && current != rack {
			s.logger.Warn("Box %s is already on rack %s, adding it to rack %s as well", kotak, current, rack)
			break
		}
	}

	entry, err := s.appendEntry(ctx, entries, kotak, rack)
	if err != nil {
		return nil, err
	}

	err = s.AddLog(ctx, LogInput{
		RefFile:  fmt.Sprintf("RACK-%s-%s", rack, kotak),
		Activity: "Kotak added",
		Location: systemLocation,
		UpdateBy: defaultString(createdBy, systemActor),
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// DeleteKotak removes the first entry placing kotak on rack.
func (s *Service) DeleteKotak(ctx context.Context, rack, kotak, deletedBy string) error {
	rack = strings.TrimSpace(rack)
	kotak = strings.TrimSpace(kotak)
	if rack == "" || kotak == "" {
		return invalid("Rack and kotak names are required")
	}

	entries, err := s.rackEntries(ctx)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if strings.TrimSpace(entry.Rack) != rack || strings.TrimSpace(entry.Kotak) != kotak {
			continue
		}

		err := s.AddLog(ctx, LogInput{
			RefFile:  fmt.Sprintf("RACK-%s-%s", rack, kotak),
			Activity: "Kotak deleted",
			Location: systemLocation,
			UpdateBy: defaultString(deletedBy, systemActor),
		})
		if err != nil {
			return err
		}
		return s.removeEntries(ctx, []uint{entry.Seq})
	}

	return notFound("Kotak not found in specified rack")
}

// CreateBox registers a standalone box that is not on any rack yet.
func (s *Service) CreateBox(ctx context.Context, kotak, createdBy string) (*models.RackEntry, error) {
	kotak = strings.TrimSpace(kotak)
	if kotak == "" {
		return nil, invalid("Box name is required")
	}

	entries, err := s.rackEntries(ctx)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if strings.TrimSpace(entry.Kotak) == kotak {
			return nil, conflict("Box already exists")
		}
	}

	entry, err := s.appendEntry(ctx, entries, kotak, "")
	if err != nil {
		return nil, err
	}

	err = s.AddLog(ctx, LogInput{
		RefFile:  "BOX-" + kotak,
		Activity: "Box created",
		Location: systemLocation,
		UpdateBy: defaultString(createdBy, systemActor),
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// DeleteBoxMessage describes a box removal of n entries.
func DeleteBoxMessage(n int) string {
	return fmt.Sprintf("Box permanently deleted from system (%d entries removed)", n)
}

// DeleteBox removes every entry of kotak, on any rack or standalone, and
// returns how many went. The log entry is written first.
func (s *Service) DeleteBox(ctx context.Context, kotak, deletedBy string) (int, error) {
	kotak = strings.TrimSpace(kotak)
	if kotak == "" {
		return 0, invalid("Box name is required")
	}

	entries, err := s.rackEntries(ctx)
	if err != nil {
		return 0, err
	}

	var seqs []uint
	for _, entry := range entries {
		if strings.TrimSpace(entry.Kotak) == kotak {
			seqs = append(seqs, entry.Seq)
		}
	}
	if len(seqs) == 0 {
		return 0, notFound("Box not found in system")
	}

	err = s.AddLog(ctx, LogInput{
		RefFile:  "BOX-" + kotak,
		Activity: DeleteBoxMessage(len(seqs)),
		Location: systemLocation,
		UpdateBy: defaultString(deletedBy, systemActor),
	})
	if err != nil {
		return 0, err
	}

	if err := s.removeEntries(ctx, seqs); err != nil {
		return 0, err
	}

	s.logger.Info("Deleted box %s (%d entries)", kotak, len(seqs))
	return len(seqs), nil
}
