package models

import (
	"strconv"
	"strings"
)

// Category is an entry of the CATEGORY lookup list.
type Category struct {
	Seq uint `gorm:"primaryKey;autoIncrement" json:"-"`

	ID   int    `gorm:"column:category_id;not null" json:"id"`
	Name string `gorm:"type:text;not null"          json:"category"`
}

func (Category) TableName() string {
	return "category"
}

// FileType is an entry of the TYPE lookup list.
type FileType struct {
	Seq uint `gorm:"primaryKey;autoIncrement" json:"-"`

	ID   int    `gorm:"column:type_id;not null" json:"id"`
	Name string `gorm:"type:text;not null"      json:"type"`
}

func (FileType) TableName() string {
	return "type"
}

var (
	CategoryColumns = []string{"ID", "CATEGORY"}
	FileTypeColumns = []string{"ID", "TYPE"}
)

// LookupFromValues parses an (ID, NAME) row. A non-numeric id yields 0,
// which callers treat as "no id".
func LookupFromValues(values []string) (int, string) {
	var id int
	var name string
	if len(values) > 0 {
		id, _ = strconv.Atoi(strings.TrimSpace(values[0]))
	}
	if len(values) > 1 {
		name = values[1]
	}
	return id, name
}
