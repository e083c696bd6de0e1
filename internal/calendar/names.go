package calendar

import (
	"sort"
	"time"
)

// Language codes with localized name tables.
const (
	LangIndonesian = "id"
	LangEnglish    = "en"
)

// DefaultLanguage is used when a name is missing in the requested language.
const DefaultLanguage = LangIndonesian

type nameTable struct {
	weekdays    [7]string
	months      [12]string
	hijriMonths [12]string
	rules       map[HolidayRule]string
}

var nameTables = map[string]nameTable{
	LangIndonesian: {
		weekdays: [7]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"},
		months: [12]string{
			"Januari", "Februari", "Maret", "April", "Mei", "Juni",
			"Juli", "Agustus", "September", "Oktober", "November", "Desember",
		},
		hijriMonths: [12]string{
			"Muharram", "Safar", "Rabiul Awal", "Rabiul Akhir", "Jumadil Awal", "Jumadil Akhir",
			"Rajab", "Syaban", "Ramadan", "Syawal", "Zulkaidah", "Zulhijjah",
		},
		rules: map[HolidayRule]string{
			RuleGregorianNewYear: "Tahun Baru Masehi",
			RuleIslamicNewYear:   "Tahun Baru Islam",
			RuleEidAlFitr:        "Hari Raya Idul Fitri",
			RuleEidAlAdha:        "Hari Raya Idul Adha",
			RuleIsraMiraj:        "Isra Mikraj",
			RuleChineseNewYear:   "Tahun Baru Imlek",
		},
	},
	LangEnglish: {
		weekdays: [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		months: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		hijriMonths: [12]string{
			"Muharram", "Safar", "Rabi al-Awwal", "Rabi al-Thani", "Jumada al-Ula", "Jumada al-Akhirah",
			"Rajab", "Shaban", "Ramadan", "Shawwal", "Dhu al-Qadah", "Dhu al-Hijjah",
		},
		rules: map[HolidayRule]string{
			RuleGregorianNewYear: "New Year (Gregorian)",
			RuleIslamicNewYear:   "Islamic New Year",
			RuleEidAlFitr:        "Eid al-Fitr",
			RuleEidAlAdha:        "Eid al-Adha",
			RuleIsraMiraj:        "Isra Mi'raj",
			RuleChineseNewYear:   "Chinese New Year",
		},
	},
}

var chineseDays = [...]string{
	"初一", "初二", "初三", "初四", "初五", "初六", "初七", "初八", "初九", "初十",
	"十一", "十二", "十三", "十四", "十五", "十六", "十七", "十八", "十九", "二十",
	"廿一", "廿二", "廿三", "廿四", "廿五", "廿六", "廿七", "廿八", "廿九", "三十",
}

var chineseMonths = [...]string{
	"正月", "二月", "三月", "四月", "五月", "六月",
	"七月", "八月", "九月", "十月", "冬月", "腊月",
}

// Languages returns the codes that have name tables, sorted.
func Languages() []string {
	langs := make([]string, 0, len(nameTables))
	for lang := range nameTables {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

func tableFor(lang string) nameTable {
	if t, ok := nameTables[lang]; ok {
		return t
	}
	return nameTables[DefaultLanguage]
}

// WeekdayName localizes a weekday.
func WeekdayName(lang string, wd time.Weekday) string {
	return tableFor(lang).weekdays[wd]
}

// MonthName localizes a Gregorian month.
func MonthName(lang string, m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return tableFor(lang).months[m-1]
}

// HijriMonthName localizes a Hijri month number (1-12).
func HijriMonthName(lang string, month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return tableFor(lang).hijriMonths[month-1]
}

// ChineseDayName renders a lunar day (1-30) in Chinese numerals.
func ChineseDayName(day int) string {
	if day < 1 || day > len(chineseDays) {
		return ""
	}
	return chineseDays[day-1]
}

// ChineseMonthName renders a lunar month, prefixing leap months with 闰.
func ChineseMonthName(month int, leap bool) string {
	if month < 1 || month > len(chineseMonths) {
		return ""
	}
	if leap {
		return "闰" + chineseMonths[month-1]
	}
	return chineseMonths[month-1]
}

// RuleName localizes a rule-triggered holiday.
func RuleName(lang string, rule HolidayRule) string {
	if name, ok := tableFor(lang).rules[rule]; ok {
		return name
	}
	return nameTables[DefaultLanguage].rules[rule]
}
