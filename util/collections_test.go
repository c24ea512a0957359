package util

import "testing"

func TestContains(t *testing.T) {
	tests := []struct {
		name  string
		slice []int
		val   int
		want  bool
	}{
		{"found", []int{1, 2, 3}, 2, true},
		{"not found", []int{1, 2, 3}, 4, false},
		{"empty slice", []int{}, 1, false},
		{"nil slice", nil, 1, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Contains(tc.slice, tc.val); got != tc.want {
				t.Errorf("Contains(%v, %d) = %v, want %v", tc.slice, tc.val, got, tc.want)
			}
		})
	}
}

func TestFilter(t *testing.T) {
	evens := Filter([]int{1, 2, 3, 4, 5, 6}, IsEven[int])
	want := []int{2, 4, 6}
	if len(evens) != len(want) {
		t.Fatalf("expected %v, got %v", want, evens)
	}
	for i, v := range evens {
		if v != want[i] {
			t.Errorf("index %d: expected %d, got %d", i, want[i], v)
		}
	}
}

func TestFilterEmpty(t *testing.T) {
	result := Filter([]int{}, func(n int) bool { return true })
	if result == nil {
		t.Fatal("expected non-nil result")
	}
	if len(result) != 0 {
		t.Errorf("expected empty result, got %d elements", len(result))
	}
}

func TestMap(t *testing.T) {
	got := Map([]string{"abc", "racecar"}, ReverseString)
	if got[0] != "cba" || got[1] != "racecar" {
		t.Errorf("unexpected result %v", got)
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce("", "", "hello", "world"); got != "hello" {
		t.Errorf("expected 'hello', got %q", got)
	}
	if got := Coalesce(0, 0, 42); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
	if got := Coalesce("", ""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}
