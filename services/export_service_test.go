package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/riley-tran/rileys-diner-api/models"
)

func TestHistoryToCSVColumnOrder(t *testing.T) {
	orders := []models.HistoryOrderView{
		{
			ID:           "ORD-101",
			CustomerName: "John Doe",
			Type:         models.OrderTypeDineIn,
			Status:       models.SettlementCompleted,
			TotalAmount:  54.99,
			OrderDate:    time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC),
		},
	}

	csv := HistoryToCSV(orders)
	assert.Equal(t, "ORD-101,John Doe,dine-in,completed,54.99,2024-01-15 14:30:00", csv)
}

func TestHistoryToCSVAmountIsPlainDecimal(t *testing.T) {
	orders := []models.HistoryOrderView{
		{ID: "A", CustomerName: "X", Type: models.OrderTypeTakeout, Status: models.SettlementCanceled,
			TotalAmount: 32.50, OrderDate: time.Date(2024, 1, 14, 18, 45, 0, 0, time.UTC)},
		{ID: "B", CustomerName: "Y", Type: models.OrderTypeDelivery, Status: models.SettlementRefunded,
			TotalAmount: 20, OrderDate: time.Date(2024, 1, 14, 13, 5, 0, 0, time.UTC)},
	}

	lines := strings.Split(HistoryToCSV(orders), "\n")
	assert.Len(t, lines, 2)
	// No currency formatting, no padded zeros
	assert.Contains(t, lines[0], ",32.5,")
	assert.Contains(t, lines[1], ",20,")
}

func TestHistoryToCSVMultipleLinesNoTrailingNewline(t *testing.T) {
	orders := []models.HistoryOrderView{
		{ID: "A", CustomerName: "One", Type: models.OrderTypeDineIn, Status: models.SettlementCompleted,
			OrderDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{ID: "B", CustomerName: "Two", Type: models.OrderTypeDineIn, Status: models.SettlementCompleted,
			OrderDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
	}

	csv := HistoryToCSV(orders)
	assert.Equal(t, 2, len(strings.Split(csv, "\n")))
	assert.False(t, strings.HasSuffix(csv, "\n"), "No trailing newline")
}

func TestHistoryToCSVEmptyInput(t *testing.T) {
	assert.Equal(t, "", HistoryToCSV(nil), "Zero orders should produce an empty body, not an error")
	assert.Equal(t, "", HistoryToCSV([]models.HistoryOrderView{}))
}

// TestHistoryToCSVEscapesEmbeddedCommas covers the column-shift bug the
// dashboard used to have: a customer name containing a comma must not
// produce an extra column.
func TestHistoryToCSVEscapesEmbeddedCommas(t *testing.T) {
	orders := []models.HistoryOrderView{
		{
			ID:           "ORD-105",
			CustomerName: `Smith, Jane "JJ"`,
			Type:         models.OrderTypeTakeout,
			Status:       models.SettlementCompleted,
			TotalAmount:  10,
			OrderDate:    time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
		},
	}

	csv := HistoryToCSV(orders)
	assert.Equal(t, `ORD-105,"Smith, Jane ""JJ""",takeout,completed,10,2024-01-15 12:00:00`, csv)
}

func TestExportHistoryWritesThroughSink(t *testing.T) {
	sink := NewMockExportSink()
	service := &exportService{
		sink: sink,
		now:  func() time.Time { return time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC) },
	}

	orders := []models.HistoryOrderView{
		{ID: "ORD-101", CustomerName: "John Doe", Type: models.OrderTypeDineIn,
			Status: models.SettlementCompleted, TotalAmount: 54.99,
			OrderDate: time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)},
	}

	result, err := service.ExportHistory(orders)
	assert.NoError(t, err)
	assert.Equal(t, "order-history-15-01-2024.csv", result.Filename)

	content, err := sink.Content(result.Filename)
	assert.NoError(t, err)
	assert.Equal(t, result.Content, content)
	assert.Equal(t, "text/csv", sink.MimeType(result.Filename))
}

// TestExportReflectsFilteredSubset verifies the export pipeline operates on
// whatever subset the filter produced, never the full list
func TestExportReflectsFilteredSubset(t *testing.T) {
	sink := NewMockExportSink()
	service := &exportService{
		sink: sink,
		now:  func() time.Time { return time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC) },
	}

	orders := []models.HistoryOrderView{
		{ID: "ORD-A", CustomerName: "Dine In Guest", Type: models.OrderTypeDineIn,
			Status: models.SettlementCompleted, OrderDate: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)},
		{ID: "ORD-B", CustomerName: "Takeout Guest", Type: models.OrderTypeTakeout,
			Status: models.SettlementCompleted, OrderDate: time.Date(2024, 1, 15, 13, 0, 0, 0, time.UTC)},
	}

	dineIn := models.OrderTypeDineIn
	filtered := FilterHistory(orders, HistoryFilter{Type: &dineIn})

	result, err := service.ExportHistory(filtered)
	assert.NoError(t, err)
	assert.Contains(t, result.Content, "ORD-A")
	assert.NotContains(t, result.Content, "ORD-B")
}

func TestExportHistorySinkFailure(t *testing.T) {
	sink := NewMockExportSink()
	sink.FailWith(errors.New("bucket unavailable"))
	service := &exportService{
		sink: sink,
		now:  time.Now,
	}

	_, err := service.ExportHistory(nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "bucket unavailable")
}

func TestInitExportService(t *testing.T) {
	sink := NewMockExportSink()
	service := InitExportService(sink)
	defer SetExportService(nil)

	assert.Equal(t, service, GetExportService())

	result, err := service.ExportHistory(nil)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.Filename, "order-history-"))
	assert.True(t, strings.HasSuffix(result.Filename, ".csv"))
	assert.Equal(t, "", result.Content)
	assert.True(t, sink.FileExists(result.Filename), "Empty export still produces a file")
}
