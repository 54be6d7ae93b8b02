package models

// Category is display metadata for one expense tag. The set and its order
// mirror the mini app's picker; the color feeds the spending chart.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	Color string `json:"color"`
}

// CategoryOther is the fallback bucket for unrecognized tags.
const CategoryOther = "other"

// Categories in fixed display order.
var Categories = []Category{
	{ID: "food", Name: "Еда", Emoji: "🍕", Color: "#f87171"},
	{ID: "transport", Name: "Транспорт", Emoji: "🚌", Color: "#60a5fa"},
	{ID: "home", Name: "Дом", Emoji: "🏠", Color: "#fbbf24"},
	{ID: "subs", Name: "Подписки", Emoji: "📺", Color: "#a78bfa"},
	{ID: "kids", Name: "Дети", Emoji: "🧸", Color: "#f472b6"},
	{ID: "health", Name: "Здоровье", Emoji: "💊", Color: "#34d399"},
	{ID: "cafe", Name: "Кафе", Emoji: "☕", Color: "#fb923c"},
	{ID: "taxi", Name: "Такси", Emoji: "🚕", Color: "#facc15"},
	{ID: "entertainment", Name: "Развлечения", Emoji: "🎮", Color: "#818cf8"},
	{ID: "gifts", Name: "Подарки", Emoji: "🎁", Color: "#fb7185"},
	{ID: "travel", Name: "Путешествия", Emoji: "✈️", Color: "#2dd4bf"},
	{ID: CategoryOther, Name: "Прочее", Emoji: "📦", Color: "#94a3b8"},
}

// CategoryByID looks a category up in the fixed set.
func CategoryByID(id string) (Category, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// NormalizeCategory maps unknown tags onto the "other" bucket. Stored rows
// keep whatever tag the client sent; normalization happens on display.
func NormalizeCategory(id string) string {
	if _, ok := CategoryByID(id); ok {
		return id
	}
	return CategoryOther
}
