package flames

// Category is one of the six FLAMES relationship outcomes.
type Category int

// Categories in FLAMES order. The numeric value is the 1-based index the
// remainder maps onto.
const (
	Friends Category = iota + 1
	Love
	Affection
	Marriage
	Enemies
	Siblings
)

// Info is the fixed presentation metadata for a category. Color is a token
// such as "red" that themes translate to a concrete colour.
type Info struct {
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Color       string   `json:"color"`
	Category    Category `json:"-"`
}

var infos = [...]Info{
	{Category: Friends, Label: "Friends", Description: "You both share a strong bond of friendship!", Icon: "👫", Color: "blue"},
	{Category: Love, Label: "Love", Description: "There's a romantic spark between you two!", Icon: "❤️", Color: "red"},
	{Category: Affection, Label: "Affection", Description: "A caring and affectionate connection!", Icon: "🤗", Color: "pink"},
	{Category: Marriage, Label: "Marriage", Description: "Destined to be together forever!", Icon: "💍", Color: "purple"},
	{Category: Enemies, Label: "Enemies", Description: "Better stay away from each other!", Icon: "⚔️", Color: "yellow"},
	{Category: Siblings, Label: "Siblings", Description: "A strong sibling-like bond!", Icon: "👪", Color: "green"},
}

// All returns the categories in FLAMES order.
func All() []Category {
	return []Category{Friends, Love, Affection, Marriage, Enemies, Siblings}
}

// Valid reports whether c is one of the six categories.
func (c Category) Valid() bool {
	return c >= Friends && c <= Siblings
}

// Lookup returns the presentation metadata for c.
func Lookup(c Category) (Info, bool) {
	if !c.Valid() {
		return Info{}, false
	}
	return infos[c-1], true
}

func (c Category) String() string {
	if info, ok := Lookup(c); ok {
		return info.Label
	}
	return "Unknown"
}

// MarshalText encodes the category as its label.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// fromRemainder maps a non-zero letter count onto a category. A remainder of
// zero wraps to the sixth slot.
func fromRemainder(count int) Category {
	r := count % len(infos)
	if r == 0 {
		return Siblings
	}
	return Category(r)
}
