package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/WallaWallaTravel/walla-walla-travel/internal/domain"
)

func TestBookingsXLSX(t *testing.T) {
	bookings := []*domain.Booking{
		{
			Reference:     "WWT-2026-0001",
			ServiceType:   domain.ServiceTypeWineTour,
			Status:        domain.BookingStatusConfirmed,
			TourDate:      time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
			PartySize:     6,
			CustomerName:  "Dana Whitman",
			CustomerEmail: "dana@example.com",
			CreatedAt:     time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC),
		},
		{
			Reference:    "WWT-2026-0002",
			ServiceType:  domain.ServiceTypeTransfer,
			Status:       domain.BookingStatusPending,
			TourDate:     time.Date(2026, 3, 20, 8, 0, 0, 0, time.UTC),
			PartySize:    2,
			CustomerName: "Lee Ortiz",
			CreatedAt:    time.Date(2026, 2, 2, 14, 0, 0, 0, time.UTC),
		},
	}

	buf, err := BookingsXLSX(bookings)
	require.NoError(t, err)
	require.NotZero(t, buf.Len())

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue(bookingsSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Reference", header)

	ref, err := f.GetCellValue(bookingsSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "WWT-2026-0001", ref)

	service, err := f.GetCellValue(bookingsSheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "transfer", service)

	party, err := f.GetCellValue(bookingsSheet, "E2")
	require.NoError(t, err)
	assert.Equal(t, "6", party)

	// defaults sheet is dropped, only the export sheet remains
	assert.Equal(t, []string{bookingsSheet}, f.GetSheetList())
}

func TestBookingsXLSX_Empty(t *testing.T) {
	buf, err := BookingsXLSX(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue(bookingsSheet, "J1")
	require.NoError(t, err)
	assert.Equal(t, "Created", header)
}
