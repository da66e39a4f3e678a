package util

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
)

func TestGeneratePlaceholderName_Format(t *testing.T) {
	name := GeneratePlaceholderName(nil)

	parts := strings.Split(name, " ")
	if len(parts) != 2 {
		t.Fatalf("Name should be \"Given Family\", got: %q", name)
	}
	if parts[0] == "" || parts[1] == "" {
		t.Errorf("Name parts should be non-empty, got: %q", name)
	}
}

func TestGeneratePlaceholderName_Deterministic(t *testing.T) {
	name1 := GeneratePlaceholderName(rand.New(rand.NewPCG(42, 42)))
	name2 := GeneratePlaceholderName(rand.New(rand.NewPCG(42, 42)))

	if name1 != name2 {
		t.Errorf("Same seed should produce same name: %s != %s", name1, name2)
	}
}

func TestGeneratePlaceholderName_FromKnownLists(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 3))
	given := slices.Concat(EnglishNames.Male, EnglishNames.Female, FrenchNames.Male, FrenchNames.Female)
	family := slices.Concat(EnglishNames.Family, FrenchNames.Family)

	for i := 0; i < 200; i++ {
		parts := strings.SplitN(GeneratePlaceholderName(rng), " ", 2)
		if !slices.Contains(given, parts[0]) {
			t.Errorf("Unknown given name %q", parts[0])
		}
		if !slices.Contains(family, parts[1]) {
			t.Errorf("Unknown family name %q", parts[1])
		}
	}
}

func TestGeneratePlaceholderName_FrenchRatio(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))
	french := 0
	const n = 2000
	for i := 0; i < n; i++ {
		family := strings.SplitN(GeneratePlaceholderName(rng), " ", 2)[1]
		if slices.Contains(FrenchNames.Family, family) {
			french++
		}
	}

	if french < n/10 || french > n*3/10 {
		t.Errorf("French names = %d/%d, want roughly 20%%", french, n)
	}
}

func TestNamePools_Disjoint(t *testing.T) {
	for _, name := range FrenchNames.Family {
		if slices.Contains(EnglishNames.Family, name) {
			t.Errorf("%s is in both family pools", name)
		}
	}
	for _, pool := range []NamePool{EnglishNames, FrenchNames} {
		for _, name := range slices.Concat(pool.Male, pool.Female, pool.Family) {
			if strings.Contains(name, " ") {
				t.Errorf("%q would break the \"Given Family\" format", name)
			}
		}
	}
}
