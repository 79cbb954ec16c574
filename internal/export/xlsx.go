package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/WallaWallaTravel/walla-walla-travel/internal/domain"
)

const bookingsSheet = "Bookings"

// ContentType is the MIME type browsers expect for .xlsx downloads.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// BookingsXLSX renders the admin booking export, one row per booking.
func BookingsXLSX(bookings []*domain.Booking) (*bytes.Buffer, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(bookingsSheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"Reference", "Service", "Status", "Tour date", "Party", "Customer", "Email", "Phone", "Pickup address", "Created"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(bookingsSheet, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(headers), 1)
		f.SetCellStyle(bookingsSheet, "A1", last, headerStyle)
	}

	for i, b := range bookings {
		row := i + 2
		f.SetCellValue(bookingsSheet, fmt.Sprintf("A%d", row), b.Reference)
		f.SetCellValue(bookingsSheet, fmt.Sprintf("B%d", row), string(b.ServiceType))
		f.SetCellValue(bookingsSheet, fmt.Sprintf("C%d", row), string(b.Status))
		f.SetCellValue(bookingsSheet, fmt.Sprintf("D%d", row), b.TourDate.Format("2006-01-02 15:04"))
		f.SetCellValue(bookingsSheet, fmt.Sprintf("E%d", row), b.PartySize)
		f.SetCellValue(bookingsSheet, fmt.Sprintf("F%d", row), b.CustomerName)
		f.SetCellValue(bookingsSheet, fmt.Sprintf("G%d", row), b.CustomerEmail)
		f.SetCellValue(bookingsSheet, fmt.Sprintf("H%d", row), b.CustomerPhone)
		f.SetCellValue(bookingsSheet, fmt.Sprintf("I%d", row), b.PickupAddress)
		f.SetCellValue(bookingsSheet, fmt.Sprintf("J%d", row), b.CreatedAt.Format("2006-01-02 15:04"))
	}

	f.SetColWidth(bookingsSheet, "A", "A", 16)
	f.SetColWidth(bookingsSheet, "B", "C", 12)
	f.SetColWidth(bookingsSheet, "D", "D", 18)
	f.SetColWidth(bookingsSheet, "E", "E", 8)
	f.SetColWidth(bookingsSheet, "F", "F", 22)
	f.SetColWidth(bookingsSheet, "G", "G", 26)
	f.SetColWidth(bookingsSheet, "H", "H", 16)
	f.SetColWidth(bookingsSheet, "I", "I", 30)
	f.SetColWidth(bookingsSheet, "J", "J", 18)

	f.DeleteSheet("Sheet1")

	return f.WriteToBuffer()
}
