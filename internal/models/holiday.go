package models

import "time"

// FixedHolidayRow is one localized name of a fixed-date holiday as stored in
// the fixed_holidays table.
type FixedHolidayRow struct {
	HolidayDate time.Time `db:"holiday_date" json:"holiday_date"`
	Lang        string    `db:"lang" json:"lang"`
	Name        string    `db:"name" json:"name"`
}

// HolidaySource identifies where the fixed-date table is loaded from.
type HolidaySource string

const (
	HolidaySourceBuiltin  HolidaySource = "builtin"
	HolidaySourceFile     HolidaySource = "file"
	HolidaySourceDatabase HolidaySource = "database"
)

// ExportFormat enumerates month export encodings.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)
