package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Международный формат: необязательный +, затем 7-15 цифр без ведущего нуля
var phoneRegexp = regexp.MustCompile(`^\+?[1-9]\d{6,14}$`)

var phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")

// NormalizePhone приводит номер к каноническому виду
// Убирает пробелы, дефисы, скобки и точки, префикс 00 заменяет на +
func NormalizePhone(raw string) (string, error) {
	cleaned := phoneSeparators.Replace(strings.TrimSpace(raw))
	if strings.HasPrefix(cleaned, "00") {
		cleaned = "+" + cleaned[2:]
	}

	if !phoneRegexp.MatchString(cleaned) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhone, raw)
	}
	return cleaned, nil
}
