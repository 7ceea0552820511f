package models

import "strconv"

// LogEntry is one row of the append-only LOG audit table.
type LogEntry struct {
	Seq uint `gorm:"primaryKey;autoIncrement" json:"-"`

	ID        int    `gorm:"column:log_id;not null"  json:"id"`
	Timestamp string `gorm:"column:datetime;type:text" json:"datetime"`
	RefFile   string `gorm:"type:text;index"         json:"reffile"`
	Activity  string `gorm:"type:text"               json:"activity"`
	Location  string `gorm:"type:text"               json:"location"`
	UpdateBy  string `gorm:"column:updated_by;type:text" json:"updatedby"`
}

func (LogEntry) TableName() string {
	return "log"
}

func (l *LogEntry) Values() []string {
	return []string{strconv.Itoa(l.ID), l.Timestamp, l.RefFile, l.Activity, l.Location, l.UpdateBy}
}

var LogEntryColumns = []string{"ID", "DATETIME", "REF FILE", "ACTIVITY", "LOCATION", "UPDATED BY"}
