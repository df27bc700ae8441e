package game

// Variant defines a board configuration.
type Variant struct {
	ID       string
	Name     string
	Size     int // Board dimension
	WinValue int // Tile that wins the game, 0 for endless play
}

// Variants lists every playable board, smallest first.
var Variants = []Variant{
	{ID: "mini", Name: "Mini 3x3", Size: 3, WinValue: 512},
	{ID: "classic", Name: "Classic 2048", Size: 4, WinValue: 2048},
	{ID: "big", Name: "Big 5x5", Size: 5, WinValue: 4096},
	{ID: "huge", Name: "Huge 6x6", Size: 6, WinValue: 8192},
	{ID: "endless", Name: "Endless", Size: 4, WinValue: 0},
}

// DefaultVariant is the variant used when none is selected.
const DefaultVariant = "classic"

// GetVariant returns the variant with the given ID.
func GetVariant(id string) (Variant, bool) {
	for _, v := range Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// VariantIDs returns the IDs of all variants in table order.
func VariantIDs() []string {
	ids := make([]string, len(Variants))
	for i, v := range Variants {
		ids[i] = v.ID
	}
	return ids
}
