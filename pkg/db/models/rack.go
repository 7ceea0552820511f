package models

// RackEntry associates a box (kotak) with a rack. An entry with an empty
// Kotak represents a rack without boxes, an entry with an empty Rack is a
// standalone box.
type RackEntry struct {
	Seq uint `gorm:"primaryKey;autoIncrement" json:"-"`

	ID    string `gorm:"column:entry_id;type:text;not null" json:"id"`
	Kotak string `gorm:"type:text;index"                    json:"kotak"`
	Rack  string `gorm:"type:text;index"                    json:"rack"`
}

func (RackEntry) TableName() string {
	return "rack_lookup"
}

func (e *RackEntry) Values() []string {
	return []string{e.ID, e.Kotak, e.Rack}
}

func RackEntryFromValues(values []string) RackEntry {
	entry := RackEntry{}
	if len(values) > 0 {
		entry.ID = values[0]
	}
	if len(values) > 1 {
		entry.Kotak = values[1]
	}
	if len(values) > 2 {
		entry.Rack = values[2]
	}
	return entry
}

var RackEntryColumns = []string{"ID", "KOTAK", "RACK"}
