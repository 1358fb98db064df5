package domain

const (
	CategoryPasteis   = "pasteis"
	CategoryCombos    = "combos"
	CategoryBebidas   = "bebidas"
	CategoryDestaques = "destaques"
)

var Categories = []string{CategoryPasteis, CategoryCombos, CategoryBebidas, CategoryDestaques}

var categoryLabels = map[string]string{
	CategoryPasteis:   "Pastéis",
	CategoryCombos:    "Combos",
	CategoryBebidas:   "Bebidas",
	CategoryDestaques: "Destaques",
}

// CategoryLabel never fails: unknown keys are returned unchanged.
func CategoryLabel(key string) string {
	if label, ok := categoryLabels[key]; ok {
		return label
	}
	return key
}

// DefaultMenu is what a fresh local store starts with.
func DefaultMenu() []MenuItem {
	return []MenuItem{
		{ID: 1, Name: "Pastel de Carne", Price: 12.90, Category: CategoryPasteis, Description: "Carne moída temperada"},
		{ID: 2, Name: "Pastel de Queijo", Price: 11.90, Category: CategoryPasteis, Description: "Queijo muçarela derretido"},
		{ID: 3, Name: "Pastel de Frango", Price: 12.90, Category: CategoryPasteis, Description: "Frango desfiado com temperos especiais"},
		{ID: 4, Name: "Pastel de Palmito", Price: 13.90, Category: CategoryPasteis, Description: "Palmito pupunha com catupiry"},
		{ID: 5, Name: "COMBO FAMÍLIA", Price: 99.90, Category: CategoryCombos, Description: "4 Pastéis Grandes + 2 Refrigerantes 2L"},
		{ID: 6, Name: "COMBO CASAL", Price: 59.90, Category: CategoryCombos, Description: "2 Pastéis Grandes + 1 Refrigerante 2L"},
		{ID: 7, Name: "Refrigerante 2L", Price: 12.00, Category: CategoryBebidas, Description: "2L - Coca-Cola, Guaraná, Fanta, etc."},
		{ID: 8, Name: "Suco Natural 500ml", Price: 8.00, Category: CategoryBebidas, Description: "Laranja, Limão, Maracujá"},
	}
}
