// Package render formats forecast entries as a fixed-width text table.
package render

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"meteocli/forecast"
	"meteocli/models"
	"meteocli/weathercode"
)

// Hourly field names requested from the provider
const (
	FieldTemperature              = "temperature_2m"
	FieldRelativeHumidity         = "relativehumidity_2m"
	FieldPrecipitationProbability = "precipitation_probability"
	FieldPrecipitation            = "precipitation"
	FieldWeatherCode              = "weathercode"
)

const (
	gutter     = "   "
	dateLayout = "Jan 02, 15h"
)

// Mode selects which columns the table shows
type Mode int

const (
	// ModeBasic shows date, temperature, humidity and precipitation
	ModeBasic Mode = iota
	// ModeDescribed adds a weather description column
	ModeDescribed
)

func (m Mode) String() string {
	if m == ModeDescribed {
		return "described"
	}
	return "basic"
}

// MissingFieldPolicy decides what WriteTable does with an entry lacking a value
type MissingFieldPolicy int

const (
	// AbortOnMissing stops before anything is written
	AbortOnMissing MissingFieldPolicy = iota
	// SkipOnMissing logs and drops the entry
	SkipOnMissing
)

type column struct {
	title string
	width int
}

var headerColumns = []column{
	{"Date", 11},
	{"Temperat", 8},
	{"Humi%", 5},
	{"Prec%", 5},
	{"Precipitation", 7},
}

type valueColumn struct {
	field string
	width int
}

var valueColumns = []valueColumn{
	{FieldTemperature, 5},
	{FieldRelativeHumidity, 3},
	{FieldPrecipitationProbability, 3},
	{FieldPrecipitation, 4},
}

// Table renders the header and rows for one display mode
type Table struct {
	mode Mode
}

// NewTable creates a table renderer for the given mode
func NewTable(mode Mode) *Table {
	return &Table{mode: mode}
}

// Mode returns the display mode of the table
func (t *Table) Mode() Mode {
	return t.mode
}

// Fields returns the hourly fields the table needs, in column order
func (t *Table) Fields() []string {
	fields := make([]string, 0, len(valueColumns)+1)
	for _, c := range valueColumns {
		fields = append(fields, c.field)
	}
	if t.mode == ModeDescribed {
		fields = append(fields, FieldWeatherCode)
	}
	return fields
}

// Columns returns the number of columns in the header and in every row
func (t *Table) Columns() int {
	if t.mode == ModeDescribed {
		return len(headerColumns) + 1
	}
	return len(headerColumns)
}

// Header returns the header line
func (t *Table) Header() string {
	return strings.Join(t.headerCells(), gutter)
}

func (t *Table) headerCells() []string {
	cells := make([]string, 0, t.Columns())
	for _, c := range headerColumns {
		cells = append(cells, fmt.Sprintf("%-*s", c.width, c.title))
	}
	if t.mode == ModeDescribed {
		cells = append(cells, "Description")
	}
	return cells
}

// Row formats a single entry. values must hold every basic field; the
// description is only printed in described mode.
func (t *Table) Row(at time.Time, values map[string]models.MeasuredValue, description string) (string, error) {
	cells, err := t.rowCells(at, values, description)
	if err != nil {
		return "", err
	}
	return strings.Join(cells, gutter), nil
}

func (t *Table) rowCells(at time.Time, values map[string]models.MeasuredValue, description string) ([]string, error) {
	cells := make([]string, 0, t.Columns())
	cells = append(cells, at.Format(dateLayout))
	for _, c := range valueColumns {
		v, ok := values[c.field]
		if !ok {
			return nil, &forecast.MissingFieldError{Field: c.field, Time: at}
		}
		cells = append(cells, formatValue(v, c.width))
	}
	if t.mode == ModeDescribed {
		cells = append(cells, description)
	}
	return cells, nil
}

func formatValue(v models.MeasuredValue, width int) string {
	if !v.HasUnit() {
		return fmt.Sprintf("%*s", width, v.String())
	}
	return fmt.Sprintf("%*s %s", width, v.String(), v.Unit)
}

// EntryRow extracts the fields of entry and formats it, looking up the
// weather description in described mode.
func (t *Table) EntryRow(entry models.ForecastEntry) (string, error) {
	values, err := forecast.Extract(entry, t.Fields())
	if err != nil {
		return "", err
	}

	description := ""
	if t.mode == ModeDescribed {
		code, ok := weathercode.FromValue(values[FieldWeatherCode].Value)
		if ok {
			description = weathercode.Describe(code)
		} else {
			description = weathercode.Unknown
		}
	}
	return t.Row(entry.Time, values, description)
}

// WriteTable writes the header and one line per entry. All rows are
// formatted first so that an aborted table leaves no partial output.
func (t *Table) WriteTable(w io.Writer, entries []models.ForecastEntry, policy MissingFieldPolicy) error {
	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, t.Header())

	for _, entry := range entries {
		row, err := t.EntryRow(entry)
		if err != nil {
			if policy == SkipOnMissing && errors.Is(err, forecast.ErrMissingField) {
				log.Printf("Warning: skipping row: %v", err)
				continue
			}
			return err
		}
		lines = append(lines, row)
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write table: %w", err)
		}
	}
	return nil
}
