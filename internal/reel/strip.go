package reel

import (
	"math/rand/v2"

	"slot_machine/internal/model"
)

// buildStrip повторяет каталог по кругу до нужной длины и перемешивает.
// Каждый символ каталога попадает на ленту хотя бы один раз
func buildStrip(catalog []model.Symbol, length int, rng *rand.Rand) []model.Symbol {
	if length < len(catalog) {
		length = len(catalog)
	}

	strip := make([]model.Symbol, length)
	for i := range strip {
		strip[i] = catalog[i%len(catalog)]
	}

	// Фишер-Йетс
	rng.Shuffle(len(strip), func(i, j int) {
		strip[i], strip[j] = strip[j], strip[i]
	})
	return strip
}

// indexOf ищет первую позицию символа на ленте по ID
func indexOf(strip []model.Symbol, id string) int {
	for i, s := range strip {
		if s.ID == id {
			return i
		}
	}
	return -1
}
