package pricing

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/WallaWallaTravel/walla-walla-travel/internal/domain"
)

// DefaultLunchPerPersonCents is used when rates.yaml omits lunch_per_person.
const DefaultLunchPerPersonCents = 1750

// Band maps a party-size range to an hourly rate.
type Band struct {
	MinGuests   int
	MaxGuests   int
	HourlyCents int64
}

// Season is a named date window with its own rate bands. Windows are
// month-day based and may wrap the year end (11-01..04-30).
type Season struct {
	Name  string
	from  monthDay
	to    monthDay
	Bands []Band
}

// RateTable is the operator-editable pricing table. Base bands apply
// whenever no season window contains the service date.
type RateTable struct {
	Currency            string
	LunchPerPersonCents int64
	MinimumHours        int
	BaseBands           []Band
	Seasons             []Season
}

type rateFile struct {
	Currency       string       `yaml:"currency"`
	LunchPerPerson float64      `yaml:"lunch_per_person"`
	MinimumHours   int          `yaml:"minimum_hours"`
	BaseRates      []bandFile   `yaml:"base_rates"`
	Seasons        []seasonFile `yaml:"seasons"`
}

type bandFile struct {
	MinGuests int     `yaml:"min_guests"`
	MaxGuests int     `yaml:"max_guests"`
	Hourly    float64 `yaml:"hourly"`
}

type seasonFile struct {
	Name  string     `yaml:"name"`
	From  string     `yaml:"from"`
	To    string     `yaml:"to"`
	Rates []bandFile `yaml:"rates"`
}

// Load reads and validates a rate table. Amounts in the file are dollars;
// the table stores cents.
func Load(path string) (*RateTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rate table: %w", err)
	}

	var file rateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse rate table: %w", err)
	}

	table := &RateTable{
		Currency:            file.Currency,
		LunchPerPersonCents: dollarsToCents(file.LunchPerPerson),
		MinimumHours:        file.MinimumHours,
	}
	if table.Currency == "" {
		table.Currency = "USD"
	}
	if table.LunchPerPersonCents == 0 {
		table.LunchPerPersonCents = DefaultLunchPerPersonCents
	}

	table.BaseBands, err = convertBands(file.BaseRates)
	if err != nil {
		return nil, fmt.Errorf("base_rates: %w", err)
	}
	if len(table.BaseBands) == 0 {
		return nil, fmt.Errorf("rate table has no base_rates")
	}

	for _, s := range file.Seasons {
		season := Season{Name: s.Name}
		if season.Name == "" {
			return nil, fmt.Errorf("season without a name")
		}
		season.from, err = parseMonthDay(s.From)
		if err != nil {
			return nil, fmt.Errorf("season %s: %w", s.Name, err)
		}
		season.to, err = parseMonthDay(s.To)
		if err != nil {
			return nil, fmt.Errorf("season %s: %w", s.Name, err)
		}
		season.Bands, err = convertBands(s.Rates)
		if err != nil {
			return nil, fmt.Errorf("season %s: %w", s.Name, err)
		}
		if len(season.Bands) == 0 {
			return nil, fmt.Errorf("season %s has no rates", s.Name)
		}
		table.Seasons = append(table.Seasons, season)
	}

	return table, nil
}

func convertBands(file []bandFile) ([]Band, error) {
	bands := make([]Band, 0, len(file))
	for _, b := range file {
		if b.MinGuests < 1 || b.MaxGuests < b.MinGuests {
			return nil, fmt.Errorf("invalid guest range %d..%d", b.MinGuests, b.MaxGuests)
		}
		if b.Hourly <= 0 {
			return nil, fmt.Errorf("band %d..%d: hourly rate must be positive", b.MinGuests, b.MaxGuests)
		}
		bands = append(bands, Band{
			MinGuests:   b.MinGuests,
			MaxGuests:   b.MaxGuests,
			HourlyCents: dollarsToCents(b.Hourly),
		})
	}
	return bands, nil
}

// HourlyRateCents returns the configured rate for the date and party size.
func (t *RateTable) HourlyRateCents(date time.Time, partySize int) (int64, error) {
	for _, band := range t.bandsFor(date) {
		if partySize >= band.MinGuests && partySize <= band.MaxGuests {
			return band.HourlyCents, nil
		}
	}
	return 0, domain.ErrNoRateConfigured
}

// LunchEstimateCents is party size times the per-person lunch rate.
func (t *RateTable) LunchEstimateCents(partySize int) int64 {
	return int64(partySize) * t.LunchPerPersonCents
}

// WineTourQuote prices a tour at the hourly rate for its date and party,
// billing at least the configured minimum hours.
func (t *RateTable) WineTourQuote(date time.Time, partySize, hours int) (int64, error) {
	rate, err := t.HourlyRateCents(date, partySize)
	if err != nil {
		return 0, err
	}
	if hours < t.MinimumHours {
		hours = t.MinimumHours
	}
	return rate * int64(hours), nil
}

// MaxPartySize is the largest group any band covers. Intake validation
// rejects bigger parties.
func (t *RateTable) MaxPartySize() int {
	max := 0
	for _, b := range t.BaseBands {
		if b.MaxGuests > max {
			max = b.MaxGuests
		}
	}
	for _, s := range t.Seasons {
		for _, b := range s.Bands {
			if b.MaxGuests > max {
				max = b.MaxGuests
			}
		}
	}
	return max
}

func (t *RateTable) bandsFor(date time.Time) []Band {
	md := monthDay(int(date.Month())*100 + date.Day())
	for _, s := range t.Seasons {
		if s.contains(md) {
			return s.Bands
		}
	}
	return t.BaseBands
}

type monthDay int

func parseMonthDay(s string) (monthDay, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("bad date %q, want MM-DD", s)
	}
	m, err := strconv.Atoi(parts[0])
	if err != nil || m < 1 || m > 12 {
		return 0, fmt.Errorf("bad month in %q", s)
	}
	d, err := strconv.Atoi(parts[1])
	if err != nil || d < 1 || d > 31 {
		return 0, fmt.Errorf("bad day in %q", s)
	}
	return monthDay(m*100 + d), nil
}

func (s Season) contains(md monthDay) bool {
	if s.from <= s.to {
		return md >= s.from && md <= s.to
	}
	// окно через новый год
	return md >= s.from || md <= s.to
}

func dollarsToCents(dollars float64) int64 {
	return int64(math.Round(dollars * 100))
}
