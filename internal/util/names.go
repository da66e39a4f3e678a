package util

import "math/rand/v2"

// FrenchNameProbability is the probability (0.0-1.0) of suggesting a French name
const FrenchNameProbability = 0.20

// NamePool holds the given and family names of one language. Placeholders
// are shown to clinicians whose patients are mostly over sixty, so the
// given names lean towards that generation.
type NamePool struct {
	Male   []string
	Female []string
	Family []string
}

var (
	// EnglishNames is picked for most placeholders.
	EnglishNames = NamePool{
		Male: []string{
			"Harold", "Walter", "Eugene", "Ralph", "Howard", "Clarence", "Leonard", "Gerald",
			"Norman", "Stanley", "Herbert", "Vernon", "Chester", "Lloyd", "Wallace", "Bernard",
		},
		Female: []string{
			"Dorothy", "Mildred", "Evelyn", "Gladys", "Doris", "Frances", "Marjorie", "Shirley",
			"Beverly", "Lorraine", "Phyllis", "Edna", "Irene", "Loretta", "Bernice", "Harriet",
		},
		Family: []string{
			"Whitaker", "Holloway", "Pemberton", "Ashworth", "Fairbanks", "Caldwell", "Hargrove", "Lindqvist",
			"Prescott", "Thornton", "Barlow", "Kendrick", "Oakley", "Radcliffe", "Sutherland", "Wexford",
		},
	}

	// FrenchNames is picked for FrenchNameProbability of placeholders.
	FrenchNames = NamePool{
		Male: []string{
			"Marcel", "Gaston", "Lucien", "Raymond", "Fernand", "Roland", "Maurice", "Armand",
			"Gérard", "Léon", "Émile", "Henri",
		},
		Female: []string{
			"Simone", "Germaine", "Madeleine", "Odette", "Paulette", "Yvette", "Colette", "Huguette",
			"Jacqueline", "Ginette", "Solange", "Lucienne",
		},
		Family: []string{
			"Delacroix", "Beaumont", "Marchetti", "Vasseur", "Lacombe", "Chauvin", "Desrosiers", "Fauconnier",
			"Guillot", "Lemoine", "Rochefort", "Thibault",
		},
	}
)

// GeneratePlaceholderName returns a "Given Family" name used as the input
// placeholder on the identification step. Names are 80% English and 20%
// French, split evenly between male and female given names.
// If rng is nil, uses shared default RNG.
func GeneratePlaceholderName(rng *rand.Rand) string {
	if rng == nil {
		rng = defaultRNG
	}

	pool := EnglishNames
	if rng.Float64() < FrenchNameProbability {
		pool = FrenchNames
	}

	given := pool.Female
	if rng.IntN(2) == 0 {
		given = pool.Male
	}

	return pick(given, rng) + " " + pick(pool.Family, rng)
}

func pick(names []string, rng *rand.Rand) string {
	return names[rng.IntN(len(names))]
}
