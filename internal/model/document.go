package model

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

const dayKeyPrefix = "day_"

// Document is the single persisted application root. Day ledgers are held
// in the Days map keyed by ISO date (YYYY-MM-DD); on disk each date with
// entries becomes a top-level "day_<date>" array so the layout matches
// the historical storage format.
type Document struct {
	Goals     Goals       `json:"goals"`
	Budget    BudgetState `json:"cut"`
	Settings  Settings    `json:"settings"`
	LastDate  string      `json:"lastDate"`
	Templates []Template  `json:"templates"`
	Recents   []Recent    `json:"recents"`

	Days map[string][]FoodEntry `json:"-"`
}

// DayKey returns the on-disk key for a date.
func DayKey(date string) string {
	return dayKeyPrefix + date
}

// Entries returns the entry list for date. Absent dates are an empty
// sequence.
func (d *Document) Entries(date string) []FoodEntry {
	return d.Days[date]
}

// Dates returns all dates that have at least one entry, sorted ascending.
func (d *Document) Dates() []string {
	dates := make([]string, 0, len(d.Days))
	for date, entries := range d.Days {
		if len(entries) > 0 {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)
	return dates
}

// docFixed mirrors Document's fixed top-level fields for (un)marshaling.
type docFixed struct {
	Goals     Goals       `json:"goals"`
	Budget    BudgetState `json:"cut"`
	Settings  Settings    `json:"settings"`
	LastDate  string      `json:"lastDate"`
	Templates []Template  `json:"templates"`
	Recents   []Recent    `json:"recents"`
}

// MarshalJSON flattens the Days map into top-level day_<date> keys.
func (d Document) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, 6+len(d.Days))

	fixed := docFixed{
		Goals:     d.Goals,
		Budget:    d.Budget,
		Settings:  d.Settings,
		LastDate:  d.LastDate,
		Templates: d.Templates,
		Recents:   d.Recents,
	}
	fixedRaw, err := json.Marshal(fixed)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(fixedRaw, &out); err != nil {
		return nil, err
	}

	for date, entries := range d.Days {
		if len(entries) == 0 {
			continue
		}
		raw, err := json.Marshal(entries)
		if err != nil {
			return nil, fmt.Errorf("marshaling day %s: %w", date, err)
		}
		out[DayKey(date)] = raw
	}

	return json.Marshal(out)
}

// UnmarshalJSON restores the fixed fields and collects day_<date> keys
// back into the Days map. Unknown keys are dropped.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var fixed docFixed
	if err := json.Unmarshal(data, &fixed); err != nil {
		return err
	}
	d.Goals = fixed.Goals
	d.Budget = fixed.Budget
	d.Settings = fixed.Settings
	d.LastDate = fixed.LastDate
	d.Templates = fixed.Templates
	d.Recents = fixed.Recents

	d.Days = make(map[string][]FoodEntry)
	for key, val := range raw {
		if !strings.HasPrefix(key, dayKeyPrefix) {
			continue
		}
		date := strings.TrimPrefix(key, dayKeyPrefix)
		var entries []FoodEntry
		if err := json.Unmarshal(val, &entries); err != nil {
			return fmt.Errorf("parsing day %s: %w", date, err)
		}
		if len(entries) > 0 {
			d.Days[date] = entries
		}
	}

	return nil
}
