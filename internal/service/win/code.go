package win

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const (
	// CodeLength - длина кода получения
	CodeLength = 6
	// Без 0/O и 1/I/L, чтобы код не путали при вводе
	codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
)

// GenerateCode возвращает случайный код из алфавита без похожих символов
func GenerateCode() (string, error) {
	var b strings.Builder
	b.Grow(CodeLength)

	limit := big.NewInt(int64(len(codeAlphabet)))
	for i := 0; i < CodeLength; i++ {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		b.WriteByte(codeAlphabet[n.Int64()])
	}
	return b.String(), nil
}

// NormalizeCode приводит введенный код к виду, в котором он хранится
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidCode проверяет длину и алфавит кода
func ValidCode(code string) bool {
	if len(code) != CodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if strings.IndexByte(codeAlphabet, code[i]) < 0 {
			return false
		}
	}
	return true
}
