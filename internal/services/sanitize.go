package services

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	scriptStyleRegex = regexp.MustCompile(`(?is)<(script|style)[^>]*?>.*?</(script|style)>`)
	tagRegex         = regexp.MustCompile(`(?s)<[^>]*>`)
	octetRegex       = regexp.MustCompile(`%[a-fA-F0-9]{2}`)
	spacesRegex      = regexp.MustCompile(`[\r\n\t ]+`)
)

// TitleSanitizer чистая функция очистки заголовка.
type TitleSanitizer func(raw string) string

// SanitizeTitle очищает заголовок по правилам текстового поля админки:
//   - строка с невалидным UTF-8 превращается в пустую;
//   - теги вырезаются, script и style вместе с содержимым;
//   - переводы строк, табы и управляющие символы удаляются;
//   - percent-encoded октеты удаляются;
//   - пробелы схлопываются и обрезаются по краям.
func SanitizeTitle(raw string) string {
	if !utf8.ValidString(raw) {
		return ""
	}

	s := raw
	if strings.Contains(s, "<") {
		s = scriptStyleRegex.ReplaceAllString(s, "")
		s = tagRegex.ReplaceAllString(s, "")
	}
	s = spacesRegex.ReplaceAllString(s, " ")

	// удаление октетов может склеить новые, поэтому до неподвижной точки
	for {
		next := octetRegex.ReplaceAllString(s, "")
		if next == s {
			break
		}
		s = next
	}

	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)

	return strings.TrimSpace(spacesRegex.ReplaceAllString(s, " "))
}
