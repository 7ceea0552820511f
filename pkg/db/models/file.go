package models

// FileCase is one physical case file as stored in the FILECASE table.
// Rack is never stored here, it is joined in at read time from RACK_LOOKUP.
type FileCase struct {
	// Seq is the row handle. Ordering by Seq reproduces stored order.
	Seq uint `gorm:"primaryKey;autoIncrement" json:"-"`

	ID          string `gorm:"column:file_id;type:text;not null;index" json:"id"`
	Year        string `gorm:"type:text"                               json:"year"`
	Category    string `gorm:"type:text"                               json:"category"`
	Type        string `gorm:"type:text"                               json:"type"`
	Kotak       string `gorm:"type:text;index"                         json:"kotak"`
	RefFile     string `gorm:"type:text;index"                         json:"reffile"`
	ClientName  string `gorm:"type:text"                               json:"clientname"`
	PhoneClient string `gorm:"type:text"                               json:"phoneclient"`
	BarcodeNo   string `gorm:"type:text"                               json:"barcodeno"`
	Safekeeping string `gorm:"type:text"                               json:"safekeeping"`
	AgentDetail string `gorm:"column:agent_details;type:text"          json:"agentdetails"`
	PIC         string `gorm:"column:pic;type:text"                    json:"pic"`
	Bank        string `gorm:"type:text"                               json:"bank"`
	Location    string `gorm:"type:text"                               json:"location"`
}

func (FileCase) TableName() string {
	return "filecase"
}

// Blank reports whether every stored column of the row is empty.
func (f *FileCase) Blank() bool {
	for _, v := range f.Values() {
		if v != "" {
			return false
		}
	}
	return true
}

// Values returns the columns in FILECASE positional order.
func (f *FileCase) Values() []string {
	return []string{
		f.ID, f.Year, f.Category, f.Type, f.Kotak, f.RefFile, f.ClientName,
		f.PhoneClient, f.BarcodeNo, f.Safekeeping, f.AgentDetail, f.PIC, f.Bank, f.Location,
	}
}

// FileCaseFromValues builds a FileCase from FILECASE positional columns.
// Missing trailing columns are left empty.
func FileCaseFromValues(values []string) FileCase {
	col := func(i int) string {
		if i < len(values) {
			return values[i]
		}
		return ""
	}

	return FileCase{
		ID:          col(0),
		Year:        col(1),
		Category:    col(2),
		Type:        col(3),
		Kotak:       col(4),
		RefFile:     col(5),
		ClientName:  col(6),
		PhoneClient: col(7),
		BarcodeNo:   col(8),
		Safekeeping: col(9),
		AgentDetail: col(10),
		PIC:         col(11),
		Bank:        col(12),
		Location:    col(13),
	}
}

// FileCaseColumns is the FILECASE header row.
var FileCaseColumns = []string{
	"ID", "YEAR", "CATEGORY", "TYPE", "KOTAK", "REF FILE", "CLIENT NAME",
	"PHONE CLIENT", "BARCODE NO", "SAFEKEEPING", "AGENT DETAILS", "PIC", "BANK", "LOCATION",
}
