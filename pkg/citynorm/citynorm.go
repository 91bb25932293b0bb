package citynorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks раскладывает строку в NFD и убирает комбинируемые диакритики.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize приводит название города к канонической форме: без диакритики,
// в нижнем регистре, без окружающих пробелов. Пустой вход даёт пустую строку.
// Функция идемпотентна: Normalize(Normalize(s)) == Normalize(s).
func Normalize(city string) string {
	city = strings.TrimSpace(city)
	if city == "" {
		return ""
	}

	stripped, _, err := transform.String(stripMarks, city)
	if err != nil {
		// битый UTF-8 сравниваем как есть, только в нижнем регистре
		stripped = city
	}

	return strings.ToLower(stripped)
}

// Equal сравнивает два города по их каноническим формам.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
