package models

import "testing"

func TestCategoryByID_Known(t *testing.T) {
	testCases := []string{"food", "transport", "subs", "taxi", "other"}

	for _, id := range testCases {
		c, ok := CategoryByID(id)
		if !ok {
			t.Errorf("CategoryByID(%q) ok = false, want true", id)
			continue
		}
		if c.ID != id {
			t.Errorf("CategoryByID(%q).ID = %q, want %q", id, c.ID, id)
		}
		if c.Name == "" || c.Emoji == "" || c.Color == "" {
			t.Errorf("CategoryByID(%q) has empty metadata: %+v", id, c)
		}
	}
}

func TestCategoryByID_Unknown(t *testing.T) {
	testCases := []string{"", "groceries", "FOOD", "подписки"}

	for _, id := range testCases {
		if _, ok := CategoryByID(id); ok {
			t.Errorf("CategoryByID(%q) ok = true, want false", id)
		}
	}
}

func TestNormalizeCategory_Fallback(t *testing.T) {
	testCases := map[string]string{
		"food":      "food",
		"travel":    "travel",
		"other":     "other",
		"groceries": "other",
		"":          "other",
	}

	for in, want := range testCases {
		if got := NormalizeCategory(in); got != want {
			t.Errorf("NormalizeCategory(%q) = %q, want %q", in, got, want)
		}
	}
}

// The chart relies on "other" closing the list; a reorder would silently
// change its rendering.
func TestCategories_OtherIsLast(t *testing.T) {
	if len(Categories) != 12 {
		t.Fatalf("len(Categories) = %d, want 12", len(Categories))
	}
	if Categories[len(Categories)-1].ID != CategoryOther {
		t.Errorf("last category = %q, want %q", Categories[len(Categories)-1].ID, CategoryOther)
	}
}
