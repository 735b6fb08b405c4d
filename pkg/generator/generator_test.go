package generator

import (
	"reflect"
	"testing"
)

func TestGenerateDeterministic(t *testing.T) {
	first := Generate(1962, 200)
	second := Generate(1962, 200)

	if len(first) != 200 {
		t.Fatalf("expected 200 suppliers, got %d", len(first))
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("same seed and count must yield identical sequences")
	}
}

func TestGenerateDifferentSeeds(t *testing.T) {
	first := Generate(1962, 50)
	second := Generate(7, 50)

	same := true
	for i := range first {
		if first[i].Name != second[i].Name || first[i].Rating != second[i].Rating {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds should not produce the same catalog")
	}
}

func TestGenerateCategoryPartition(t *testing.T) {
	suppliers := Generate(1962, 5000)

	counts := map[string]int{}
	for _, s := range suppliers {
		counts[s.Category]++
	}

	if len(counts) != len(Categories()) {
		t.Fatalf("expected %d categories, got %d", len(Categories()), len(counts))
	}
	total := 0
	for category, n := range counts {
		if n != 500 {
			t.Fatalf("category %q has %d suppliers, want 500", category, n)
		}
		total += n
	}
	if total != 5000 {
		t.Fatalf("category counts sum to %d, want 5000", total)
	}
}

func TestGenerateFieldBounds(t *testing.T) {
	for _, s := range Generate(1962, 500) {
		if s.Rating < 3.5 || s.Rating > 5.0 {
			t.Fatalf("supplier %d rating %.1f out of [3.5, 5.0]", s.ID, s.Rating)
		}
		if s.AIScore < 70 || s.AIScore > 99 {
			t.Fatalf("supplier %d ai score %d out of [70, 99]", s.ID, s.AIScore)
		}
		if len(s.Products) == 0 || len(s.Certifications) == 0 {
			t.Fatalf("supplier %d missing products or certifications", s.ID)
		}
		if s.Location != s.City+", "+s.State {
			t.Fatalf("supplier %d location %q does not match city/state", s.ID, s.Location)
		}
	}
}

func TestGenerateIDsSequential(t *testing.T) {
	suppliers := Generate(3, 100)
	for i, s := range suppliers {
		if s.ID != i+1 {
			t.Fatalf("supplier at index %d has id %d, want %d", i, s.ID, i+1)
		}
	}
}

func TestGenerateZeroCount(t *testing.T) {
	if got := Generate(1962, 0); len(got) != 0 {
		t.Fatalf("expected empty catalog, got %d records", len(got))
	}
}
