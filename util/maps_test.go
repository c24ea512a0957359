package util

import "testing"

func TestMergeDictionaries(t *testing.T) {
	first := map[string]int{"a": 1, "b": 2}
	second := map[string]int{"b": 20, "c": 30}

	merged := MergeDictionaries(first, second)

	want := map[string]int{"a": 1, "b": 20, "c": 30}
	if len(merged) != len(want) {
		t.Fatalf("expected %v, got %v", want, merged)
	}
	for k, v := range want {
		if merged[k] != v {
			t.Errorf("key %q: expected %d, got %d", k, v, merged[k])
		}
	}
	if first["b"] != 2 || len(first) != 2 {
		t.Errorf("first map was modified: %v", first)
	}
	if len(second) != 2 {
		t.Errorf("second map was modified: %v", second)
	}
}

func TestMergeDictionariesNil(t *testing.T) {
	merged := MergeDictionaries[string, any](nil, nil)
	if merged == nil {
		t.Fatal("expected a non-nil map")
	}
	merged["x"] = 1

	only := MergeDictionaries(nil, map[string]string{"k": "v"})
	if only["k"] != "v" {
		t.Errorf("expected k=v, got %v", only)
	}
}
