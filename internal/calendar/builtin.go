package calendar

import "time"

// BuiltinHolidays is the Indonesian fixed-date table for 2025, used when no
// other holiday source is configured.
func BuiltinHolidays() []FixedHoliday {
	return []FixedHoliday{
		{Date: Date{2025, time.January, 1}, Name: LocalizedName{LangIndonesian: "Tahun Baru Masehi", LangEnglish: "New Year (Gregorian)"}},
		{Date: Date{2025, time.March, 29}, Name: LocalizedName{LangIndonesian: "Hari Suci Nyepi Tahun Baru Saka 1947", LangEnglish: "Day of Silence, Saka New Year 1947"}},
		{Date: Date{2025, time.April, 18}, Name: LocalizedName{LangIndonesian: "Wafat Yesus Kristus", LangEnglish: "Good Friday"}},
		{Date: Date{2025, time.April, 20}, Name: LocalizedName{LangIndonesian: "Hari Paskah", LangEnglish: "Easter Sunday"}},
		{Date: Date{2025, time.May, 1}, Name: LocalizedName{LangIndonesian: "Hari Buruh Internasional", LangEnglish: "International Labour Day"}},
		{Date: Date{2025, time.May, 12}, Name: LocalizedName{LangIndonesian: "Hari Raya Waisak 2569 BE", LangEnglish: "Vesak Day 2569 BE"}},
		{Date: Date{2025, time.May, 29}, Name: LocalizedName{LangIndonesian: "Kenaikan Yesus Kristus", LangEnglish: "Ascension of Jesus Christ"}},
		{Date: Date{2025, time.June, 9}, Name: LocalizedName{LangIndonesian: "Cuti Bersama Idul Adha 1446 Hijriyah", LangEnglish: "Eid al-Adha 1446 H collective leave"}},
	}
}
