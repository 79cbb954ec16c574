package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/WallaWallaTravel/walla-walla-travel/internal/domain"
)

func TestDisplayFields_WineTour(t *testing.T) {
	table := testTable()
	item := domain.ServiceItem{
		ServiceType:   domain.ServiceTypeWineTour,
		ServiceDate:   time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC),
		PartySize:     4,
		DurationHours: 5,
		PriceCents:    52500,
	}

	d := table.DisplayFields(item)

	assert.Equal(t, "$525.00", d.Price)
	assert.Equal(t, int64(10500), d.HourlyRateCents)
	assert.Equal(t, "$105.00", d.HourlyRate)
	assert.Equal(t, int64(7000), d.LunchEstimateCents)
	assert.Equal(t, "$70.00", d.LunchEstimate)
	assert.Contains(t, d.LunchNote, "$17.50")
}

func TestDisplayFields_Transfer(t *testing.T) {
	table := testTable()
	item := domain.ServiceItem{
		ServiceType: domain.ServiceTypeTransfer,
		ServiceDate: time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC),
		PartySize:   4,
		PriceCents:  18000,
	}

	d := table.DisplayFields(item)

	assert.Equal(t, "$180.00", d.Price)
	assert.Empty(t, d.HourlyRate)
	assert.Zero(t, d.HourlyRateCents)
	assert.Empty(t, d.LunchEstimate)
	assert.Empty(t, d.LunchNote)
}

func TestDisplayFields_WineTourRateMissing(t *testing.T) {
	table := testTable()
	item := domain.ServiceItem{
		ServiceType:   domain.ServiceTypeWineTour,
		ServiceDate:   time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC),
		PartySize:     20, // вне диапазонов таблицы
		DurationHours: 5,
		PriceCents:    60000,
	}

	d := table.DisplayFields(item)

	assert.Equal(t, int64(12000), d.HourlyRateCents)
	assert.Equal(t, "$120.00", d.HourlyRate)
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$0.00", FormatUSD(0))
	assert.Equal(t, "$17.50", FormatUSD(1750))
	assert.Equal(t, "$95.00", FormatUSD(9500))
	assert.Equal(t, "$1,234.50", FormatUSD(123450))
	assert.Equal(t, "$12,345.67", FormatUSD(1234567))
	assert.Equal(t, "$1,000,000.00", FormatUSD(100000000))
	assert.Equal(t, "-$42.10", FormatUSD(-4210))
}
