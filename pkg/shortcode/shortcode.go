package shortcode

import (
	"math/big"
	"strings"

	"github.com/google/uuid"
)

// DefaultLength длина кода бронирования по умолчанию
const DefaultLength = 8

// Generate возвращает случайный код из length символов [0-9a-z]
// Источник случайности - uuid v4, код не является криптографически стойким
func Generate(length int) string {
	if length <= 0 {
		length = DefaultLength
	}

	var sb strings.Builder
	for sb.Len() < length {
		id := uuid.New()
		sb.WriteString(new(big.Int).SetBytes(id[:]).Text(36))
	}

	return sb.String()[:length]
}
