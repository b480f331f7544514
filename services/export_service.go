package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/riley-tran/rileys-diner-api/models"
	"github.com/riley-tran/rileys-diner-api/utils"
)

// CSVMimeType is the content type of export artifacts
const CSVMimeType = "text/csv"

// ExportResult describes a finished export artifact
type ExportResult struct {
	Filename string
	Content  string
}

// ExportService serializes the currently filtered order-history subset and
// hands it to the configured sink. Export is a snapshot of whatever is
// visible at the moment of invocation, never of the full order list.
type ExportService interface {
	// ExportHistory writes the given (already filtered) orders as CSV
	// through the sink and returns the artifact
	ExportHistory(orders []models.HistoryOrderView) (ExportResult, error)
}

type exportService struct {
	sink ExportSink
	now  func() time.Time
}

var exportServiceInstance ExportService

// InitExportService initializes the export service with the given sink
func InitExportService(sink ExportSink) ExportService {
	exportServiceInstance = &exportService{
		sink: sink,
		now:  time.Now,
	}
	return exportServiceInstance
}

// GetExportService returns the initialized export service instance
func GetExportService() ExportService {
	return exportServiceInstance
}

// SetExportService sets the export service instance (primarily for testing)
func SetExportService(service ExportService) {
	exportServiceInstance = service
}

// ExportHistory serializes the orders and writes them through the sink
func (s *exportService) ExportHistory(orders []models.HistoryOrderView) (ExportResult, error) {
	result := ExportResult{
		Filename: utils.ExportFilename(s.now()),
		Content:  HistoryToCSV(orders),
	}
	if err := s.sink.Write(result.Filename, result.Content, CSVMimeType); err != nil {
		return ExportResult{}, fmt.Errorf("failed to write export: %w", err)
	}
	return result, nil
}

// HistoryToCSV renders history orders as CSV. Columns, in fixed order:
// id, customer name, order type, settlement status, total amount (plain
// decimal), order date (yyyy-MM-dd HH:mm:ss). Lines are newline-joined with
// no trailing newline; an empty input yields an empty string, not an error.
// Fields containing commas, quotes or newlines get minimal RFC 4180 quoting
// so a customer named "Smith, Jane" cannot shift the columns.
func HistoryToCSV(orders []models.HistoryOrderView) string {
	var b strings.Builder
	for i, o := range orders {
		if i > 0 {
			b.WriteByte('\n')
		}
		fields := []string{
			o.ID,
			o.CustomerName,
			string(o.Type),
			string(o.Status),
			strconv.FormatFloat(o.TotalAmount, 'f', -1, 64),
			o.OrderDate.Format(utils.CSVTimestampLayout),
		}
		for j, field := range fields {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(escapeCSVField(field))
		}
	}
	return b.String()
}

// escapeCSVField quotes a field only when it would otherwise break the row
func escapeCSVField(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
