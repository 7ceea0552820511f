package archive

import (
	"context"
	"fmt"
	"strings"

	"github.com/InfoRubix/filecase-tracking-management-system/pkg/db/models"
)

const (
	defaultSafekeeping = "TRUE"
	defaultLocation    = "Warehouse"
	systemActor        = "System"
)

// FileInput is the payload of CreateFile. Empty fields are stored empty
// except Safekeeping and Location, which have defaults.
type FileInput struct {
	Year         string `json:"year"`
	Category     string `json:"category"`
	Type         string `json:"type"`
	Kotak        string `json:"kotak"`
	RefFile      string `json:"reffile"`
	ClientName   string `json:"clientname"`
	PhoneClient  string `json:"phoneClient"`
	BarcodeNo    string `json:"barcodeno"`
	Safekeeping  string `json:"safekeeping"`
	AgentDetails string `json:"agentdetails"`
	PIC          string `json:"pic"`
	Bank         string `json:"bank"`
	Location     string `json:"location"`
	CreatedBy    string `json:"createdBy"`
}

// FileUpdate is the payload of UpdateFile. Nil fields are left untouched.
// Safekeeping cannot be changed once a file exists.
type FileUpdate struct {
	ID           string  `json:"id"`
	Year         *string `json:"year"`
	Category     *string `json:"category"`
	Type         *string `json:"type"`
	Kotak        *string `json:"kotak"`
	RefFile      *string `json:"reffile"`
	ClientName   *string `json:"clientname"`
	PhoneClient  *string `json:"phoneClient"`
	BarcodeNo    *string `json:"barcodeno"`
	AgentDetails *string `json:"agentdetails"`
	PIC          *string `json:"pic"`
	Bank         *string `json:"bank"`
	Location     *string `json:"location"`

	Activity string `json:"activity"`
	UpdateBy string `json:"updateBy"`
}

// apply copies every set field onto file.
func (u *FileUpdate) apply(file *models.FileCase) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	set(&file.Year, u.Year)
	set(&file.Category, u.Category)
	set(&file.Type, u.Type)
	set(&file.Kotak, u.Kotak)
	set(&file.RefFile, u.RefFile)
	set(&file.ClientName, u.ClientName)
	set(&file.PhoneClient, u.PhoneClient)
	set(&file.BarcodeNo, u.BarcodeNo)
	set(&file.AgentDetail, u.AgentDetails)
	set(&file.PIC, u.PIC)
	set(&file.Bank, u.Bank)
	set(&file.Location, u.Location)
}

// CreateFile appends a new file case with the next ID<n> identifier.
// Reference numbers are compared exactly, so "ab-1" and "AB-1" may coexist.
func (s *Service) CreateFile(ctx context.Context, input FileInput) (*models.FileCase, error) {
	if strings.TrimSpace(input.RefFile) == "" {
		return nil, invalid("Reference file number is required")
	}

	files, err := s.store.ListFiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read files: %w", err)
	}

	ids := make([]string, 0, len(files))
	for _, file := range files {
		if file.RefFile == input.RefFile {
			return nil, conflict("File with this reference already exists")
		}
		ids = append(ids, file.ID)
	}

	file := &models.FileCase{
		ID:          NextFileID(ids),
		Year:        input.Year,
		Category:    input.Category,
		Type:        input.Type,
		Kotak:       input.Kotak,
		RefFile:     input.RefFile,
		ClientName:  input.ClientName,
		PhoneClient: input.PhoneClient,
		BarcodeNo:   input.BarcodeNo,
		Safekeeping: defaultString(input.Safekeeping, defaultSafekeeping),
		AgentDetail: input.AgentDetails,
		PIC:         input.PIC,
		Bank:        input.Bank,
		Location:    defaultString(input.Location, defaultLocation),
	}
	if err := s.store.AppendFile(ctx, file); err != nil {
		return nil, fmt.Errorf("failed to append file: %w", err)
	}

	err = s.AddLog(ctx, LogInput{
		RefFile:  input.RefFile,
		Activity: "File created",
		Location: input.Location,
		UpdateBy: defaultString(input.CreatedBy, systemActor),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Created file %s (%s)", file.ID, file.RefFile)
	return file, nil
}

// UpdateFile changes the file whose id equals update.ID exactly.
func (s *Service) UpdateFile(ctx context.Context, update FileUpdate) error {
	if update.ID == "" {
		return invalid("File ID is required")
	}

	files, err := s.store.ListFiles(ctx)
	if err != nil {
		return fmt.Errorf("failed to read files: %w", err)
	}

	index := -1
	for i, file := range files {
		if file.ID != "" && file.ID == update.ID {
			index = i
			break
		}
	}
	if index < 0 {
		return notFound("File not found with ID: " + update.ID)
	}

	previous := files[index]
	updated := previous
	update.apply(&updated)

	if err := s.store.UpdateFile(ctx, &updated); err != nil {
		return fmt.Errorf("failed to update file %s: %w", update.ID, err)
	}

	err = s.AddLog(ctx, LogInput{
		RefFile:  defaultString(deref(update.RefFile), previous.RefFile),
		Activity: defaultString(update.Activity, "Updated"),
		Location: defaultString(deref(update.Location), previous.Location),
		UpdateBy: defaultString(update.UpdateBy, systemActor),
	})
	if err != nil {
		return err
	}

	s.logger.Info("Updated file %s", update.ID)
	return nil
}

// DeleteFile removes the first file whose reference equals refFile exactly.
// The log entry is written before the row is removed.
func (s *Service) DeleteFile(ctx context.Context, refFile, deletedBy string) error {
	if refFile == "" {
		return invalid("Reference file number is required")
	}

	files, err := s.store.ListFiles(ctx)
	if err != nil {
		return fmt.Errorf("failed to read files: %w", err)
	}

	for _, file := range files {
		if file.RefFile != refFile {
			continue
		}

		err := s.AddLog(ctx, LogInput{
			RefFile:  refFile,
			Activity: "File deleted",
			Location: file.Location,
			UpdateBy: defaultString(deletedBy, systemActor),
		})
		if err != nil {
			return err
		}

		if err := s.store.DeleteFiles(ctx, []uint{file.Seq}); err != nil {
			return fmt.Errorf("failed to delete file %s: %w", refFile, err)
		}

		s.logger.Info("Deleted file %s", refFile)
		return nil
	}

	return notFound("File not found")
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
