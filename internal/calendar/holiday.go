package calendar

import (
	"sort"
	"strings"
)

// HolidayRule identifies a holiday derived from a recurring month/day pattern.
type HolidayRule int

const (
	RuleGregorianNewYear HolidayRule = iota + 1
	RuleIslamicNewYear
	RuleEidAlFitr
	RuleEidAlAdha
	RuleIsraMiraj
	RuleChineseNewYear
)

// LocalizedName maps language codes to a display name.
type LocalizedName map[string]string

// In returns the name in lang, falling back to DefaultLanguage and then to
// the alphabetically first language present.
func (n LocalizedName) In(lang string) string {
	if v := n[lang]; v != "" {
		return v
	}
	if v := n[DefaultLanguage]; v != "" {
		return v
	}
	keys := make([]string, 0, len(n))
	for k, v := range n {
		if v != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)
	return n[keys[0]]
}

// FixedHoliday pins a named holiday to one Gregorian date.
type FixedHoliday struct {
	Date Date
	Name LocalizedName
}

// HolidayTable is a read-only lookup of fixed-date holidays. Build it once
// with NewHolidayTable; it is safe for concurrent use.
type HolidayTable struct {
	entries map[Date]LocalizedName
}

// NewHolidayTable copies the given holidays into a table. Later entries for
// the same date merge into earlier ones, language by language.
func NewHolidayTable(holidays []FixedHoliday) *HolidayTable {
	entries := make(map[Date]LocalizedName, len(holidays))
	for _, h := range holidays {
		name, ok := entries[h.Date]
		if !ok {
			name = make(LocalizedName, len(h.Name))
			entries[h.Date] = name
		}
		for lang, v := range h.Name {
			name[lang] = v
		}
	}
	return &HolidayTable{entries: entries}
}

// Lookup returns the localized name pinned to d.
func (t *HolidayTable) Lookup(lang string, d Date) (string, bool) {
	if t == nil {
		return "", false
	}
	name, ok := t.entries[d]
	if !ok {
		return "", false
	}
	v := name.In(lang)
	return v, v != ""
}

// Len returns the number of dates in the table.
func (t *HolidayTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Holidays lists the table contents sorted by date.
func (t *HolidayTable) Holidays() []FixedHoliday {
	if t == nil {
		return nil
	}
	out := make([]FixedHoliday, 0, len(t.entries))
	for d, name := range t.entries {
		cp := make(LocalizedName, len(name))
		for k, v := range name {
			cp[k] = v
		}
		out = append(out, FixedHoliday{Date: d, Name: cp})
	}
	sort.Slice(out, func(i, j int) bool {
		return DayNumber(out[i].Date) < DayNumber(out[j].Date)
	})
	return out
}

// HolidayEngine combines the fixed-date table with the rule-triggered holidays.
type HolidayEngine struct {
	table *HolidayTable
}

// NewHolidayEngine builds an engine over table; a nil table means no fixed holidays.
func NewHolidayEngine(table *HolidayTable) *HolidayEngine {
	if table == nil {
		table = NewHolidayTable(nil)
	}
	return &HolidayEngine{table: table}
}

// Table returns the fixed-date table the engine was built with.
func (e *HolidayEngine) Table() *HolidayTable {
	return e.table
}

// MatchRules evaluates the rule predicates in their fixed order. A nil hijri
// or lunar date skips the rules of that calendar.
func MatchRules(d Date, hijri *HijriDate, lunar *LunarDate) []HolidayRule {
	var rules []HolidayRule
	if d.Month == 1 && d.Day == 1 {
		rules = append(rules, RuleGregorianNewYear)
	}
	if hijri != nil {
		if hijri.Month == 1 && hijri.Day == 1 {
			rules = append(rules, RuleIslamicNewYear)
		}
		if hijri.Month == 10 && (hijri.Day == 1 || hijri.Day == 2) {
			rules = append(rules, RuleEidAlFitr)
		}
		if hijri.Month == 12 && hijri.Day == 10 {
			rules = append(rules, RuleEidAlAdha)
		}
		if hijri.Month == 7 && hijri.Day == 27 {
			rules = append(rules, RuleIsraMiraj)
		}
	}
	if lunar != nil && !lunar.Leap && lunar.Month == 1 && lunar.Day == 1 {
		rules = append(rules, RuleChineseNewYear)
	}
	return rules
}

// HolidaysFor returns the holiday names for d: the fixed-table name first,
// then every matching rule in order, without exact duplicates.
func (e *HolidayEngine) HolidaysFor(lang string, d Date, hijri *HijriDate, lunar *LunarDate) []string {
	var names []string
	seen := make(map[string]struct{})
	add := func(name string) {
		if name == "" {
			return
		}
		if _, dup := seen[name]; dup {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	if name, ok := e.table.Lookup(lang, d); ok {
		add(name)
	}
	for _, rule := range MatchRules(d, hijri, lunar) {
		add(RuleName(lang, rule))
	}
	return names
}

// JoinHolidays renders names as the comma-separated libur value; nil when empty.
func JoinHolidays(names []string) *string {
	if len(names) == 0 {
		return nil
	}
	joined := strings.Join(names, ", ")
	return &joined
}
