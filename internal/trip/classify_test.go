package trip

import "testing"

func TestClassifyMealBeatsTags(t *testing.T) {
	a := Activity{
		ID:   "meal_1",
		Type: "meal",
		Tags: []string{"outdoor", "family", "indoor"},
	}
	if got := Classify(a); got != CategoryFood {
		t.Errorf("Classify(meal) = %v, want Food", got)
	}
}

func TestClassifyTagOrder(t *testing.T) {
	cases := []struct {
		name string
		tags []string
		want Category
	}{
		{"indoor wins over outdoor and family", []string{"family", "outdoor", "indoor"}, CategoryIndoor},
		{"outdoor wins over family", []string{"family", "outdoor"}, CategoryOutdoor},
		{"family alone", []string{"family"}, CategoryFamily},
		{"no match falls back to generic", []string{"scenic", "free"}, CategoryActivity},
		{"no tags", nil, CategoryActivity},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := Activity{ID: "a1", Type: "activity", Tags: tc.tags}
			if got := Classify(a); got != tc.want {
				t.Errorf("Classify(tags=%v) = %v, want %v", tc.tags, got, tc.want)
			}
		})
	}
}

func TestStyleOfKnownCategories(t *testing.T) {
	for _, c := range []Category{
		CategoryFamily, CategoryIndoor, CategoryOutdoor,
		CategoryFood, CategoryCultural, CategoryShopping, CategoryActivity,
	} {
		st := StyleOf(c)
		if st.Swatch == "" || st.MapColor == "" || st.Icon == "" {
			t.Errorf("StyleOf(%v) has empty token: %+v", c, st)
		}
	}
}

func TestStyleOfUnknownIsNeutral(t *testing.T) {
	st := StyleOf(Category(99))
	if st.Swatch != "bg-gray-500" {
		t.Errorf("StyleOf(unknown).Swatch = %q, want bg-gray-500", st.Swatch)
	}
}

func TestCategoryJSONRoundTrip(t *testing.T) {
	data, err := CategoryShopping.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"Shopping"` {
		t.Fatalf("marshal = %s, want \"Shopping\"", data)
	}

	var c Category
	if err := c.UnmarshalJSON([]byte(`"Cultural"`)); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if c != CategoryCultural {
		t.Errorf("unmarshal = %v, want Cultural", c)
	}
}
