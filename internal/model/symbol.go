package model

// Symbol - символ барабана. Неизменяем после загрузки каталога
type Symbol struct {
	ID           string
	Name         string
	Image        string
	Weight       float64 // Вес при розыгрыше, > 0
	Value        int     // Выплата за три одинаковых, >= 0
	WinningLabel string  // Текст выигрыша, если пустой - "3x {Name}"
}
