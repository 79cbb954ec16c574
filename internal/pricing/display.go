package pricing

import (
	"fmt"
	"strconv"

	"github.com/WallaWallaTravel/walla-walla-travel/internal/domain"
)

// Display carries the customer-facing price fields for one service item.
// Wine tours show an hourly rate and a lunch estimate on top of the total;
// transfers show the fixed price only, so the extra fields stay empty.
type Display struct {
	Price              string
	HourlyRateCents    int64
	HourlyRate         string
	LunchEstimateCents int64
	LunchEstimate      string
	LunchNote          string
}

// DisplayFields builds the price presentation for a service item.
func (t *RateTable) DisplayFields(item domain.ServiceItem) Display {
	d := Display{Price: FormatUSD(item.PriceCents)}
	if item.ServiceType != domain.ServiceTypeWineTour {
		return d
	}

	rate, err := t.HourlyRateCents(item.ServiceDate, item.PartySize)
	if err != nil && item.DurationHours > 0 {
		// таблица могла измениться после составления, выводим из итога
		rate = item.PriceCents / int64(item.DurationHours)
	}
	d.HourlyRateCents = rate
	d.HourlyRate = FormatUSD(rate)
	d.LunchEstimateCents = t.LunchEstimateCents(item.PartySize)
	d.LunchEstimate = FormatUSD(d.LunchEstimateCents)
	d.LunchNote = fmt.Sprintf("Lunch estimated at %s per person, billed at cost", FormatUSD(t.LunchPerPersonCents))
	return d
}

// FormatUSD renders cents as $1,234.50.
func FormatUSD(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	whole := strconv.FormatInt(cents/100, 10)

	var grouped []byte
	for i, ch := range []byte(whole) {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, ch)
	}

	return fmt.Sprintf("%s$%s.%02d", sign, grouped, cents%100)
}
