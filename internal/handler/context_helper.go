package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"github.com/noah-isme/kalender-api/internal/calendar"
	appErrors "github.com/noah-isme/kalender-api/pkg/errors"
)

// LanguageNegotiator picks the response language from ?lang= and
// Accept-Language among the supported codes.
type LanguageNegotiator struct {
	codes   []string
	matcher language.Matcher
}

// NewLanguageNegotiator builds a negotiator. The default language is always
// supported and wins when nothing matches. Codes without name tables are skipped.
func NewLanguageNegotiator(defaultLang string, supported []string) *LanguageNegotiator {
	known := make(map[string]bool)
	for _, code := range calendar.Languages() {
		known[code] = true
	}
	if !known[defaultLang] {
		defaultLang = calendar.DefaultLanguage
	}

	codes := []string{defaultLang}
	seen := map[string]bool{defaultLang: true}
	for _, code := range supported {
		code = strings.ToLower(strings.TrimSpace(code))
		if !known[code] || seen[code] {
			continue
		}
		seen[code] = true
		codes = append(codes, code)
	}

	tags := make([]language.Tag, len(codes))
	for i, code := range codes {
		tags[i] = language.Make(code)
	}
	return &LanguageNegotiator{codes: codes, matcher: language.NewMatcher(tags)}
}

// Supported lists the negotiable codes, default first.
func (n *LanguageNegotiator) Supported() []string {
	return append([]string(nil), n.codes...)
}

// Negotiate resolves the language for the request.
func (n *LanguageNegotiator) Negotiate(c *gin.Context) string {
	if q := strings.TrimSpace(c.Query("lang")); q != "" {
		if tag, err := language.Parse(q); err == nil {
			return n.match(tag)
		}
		return n.codes[0]
	}
	if header := c.GetHeader("Accept-Language"); header != "" {
		if tags, _, err := language.ParseAcceptLanguage(header); err == nil && len(tags) > 0 {
			return n.match(tags...)
		}
	}
	return n.codes[0]
}

func (n *LanguageNegotiator) match(tags ...language.Tag) string {
	_, idx, conf := n.matcher.Match(tags...)
	if conf == language.No {
		return n.codes[0]
	}
	return n.codes[idx]
}

func parseYearMonth(c *gin.Context) (int, int, error) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return 0, 0, appErrors.Clone(appErrors.ErrValidation, "year must be an integer")
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		return 0, 0, appErrors.Clone(appErrors.ErrValidation, "month must be an integer")
	}
	return year, month, nil
}
