package slot

import "slot_machine/internal/model"

// DefaultCatalog - каталог автомата по умолчанию
func DefaultCatalog() []model.Symbol {
	return []model.Symbol{
		{ID: "seven", Name: "7", Image: "/symbols/6.png", Weight: 1, Value: 100, WinningLabel: "JACKPOT!"},
		{ID: "gutschein", Name: "Gutschein", Image: "/symbols/2.png", Weight: 2, Value: 20, WinningLabel: "GUTSCHEIN GEWONNEN!"},
		{ID: "lifebar", Name: "Lifebar", Image: "/symbols/7.png", Weight: 3, Value: 15, WinningLabel: "Calypso deiner Wahl"},
		{ID: "takis", Name: "Takis", Image: "/symbols/4.png", Weight: 4, Value: 10, WinningLabel: "FEURIGE TAKIS!"},
		{ID: "cheetos", Name: "Cheetos", Image: "/symbols/3.png", Weight: 8, Value: 5, WinningLabel: "Doritos deiner Wahl"},
		{ID: "lays", Name: "Lays", Image: "/symbols/5.png", Weight: 4, Value: 3, WinningLabel: "Snickers deiner Wahl"},
		{ID: "pombaeren", Name: "Pombären", Image: "/symbols/1.png", Weight: 4, Value: 2, WinningLabel: "Capri-Sun deiner Wahl"},
	}
}
