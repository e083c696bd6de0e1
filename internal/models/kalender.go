package models

// MasehiDate is the Gregorian part of a day record.
type MasehiDate struct {
	Tanggal int    `json:"tanggal"`
	Hari    string `json:"hari"`
	Bulan   string `json:"bulan"`
	Tahun   int    `json:"tahun"`
}

// HijriyahDate is the Islamic part of a day record; all fields are null when
// the conversion failed for that day.
type HijriyahDate struct {
	Tanggal *int    `json:"tanggal"`
	Bulan   *string `json:"bulan"`
	Tahun   *int    `json:"tahun"`
}

// JawaDate is the Javanese part of a day record.
type JawaDate struct {
	Tanggal int    `json:"tanggal"`
	Pasaran string `json:"pasaran"`
	Bulan   string `json:"bulan"`
	Tahun   int    `json:"tahun"`
}

// ChinaDate is the Chinese lunisolar part of a day record, rendered in
// Chinese numerals. Fields are null when the conversion failed.
type ChinaDate struct {
	Tanggal *string `json:"tanggal"`
	Bulan   *string `json:"bulan"`
	Tahun   *int    `json:"tahun"`
}

// DayRecord is one enriched calendar day.
type DayRecord struct {
	Masehi   MasehiDate   `json:"masehi"`
	Hijriyah HijriyahDate `json:"hijriyah"`
	Jawa     JawaDate     `json:"jawa"`
	China    ChinaDate    `json:"china"`
	Libur    *string      `json:"libur"`
}

// HasHoliday reports whether any holiday applies.
func (r DayRecord) HasHoliday() bool {
	return r.Libur != nil
}
