package duplicate

import (
	"sort"
	"strconv"
	"strings"

	"github.com/lesfleursdelanuitdev/famtree/types"
)

// MergeSuggestion names two persons SuggestMerges believes may be the
// same individual, along with the score that earned them the
// suggestion and a human-readable confidence bucket.
type MergeSuggestion struct {
	PersonAID  string
	PersonBID  string
	Score      float64
	Confidence string // "high", "medium", "low"
}

// SuggestMerges blocks g's persons by a phonetic surname key and a
// birth-year bucket, then scores every same-block pair, returning every
// pair scoring at or above cfg.MinScore in descending score order. A
// nil cfg uses DefaultConfig.
func SuggestMerges(g *types.PersonGraph, cfg *Config) []MergeSuggestion {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	blocks := buildBlocks(g, cfg)
	seen := map[[2]string]bool{}
	var out []MergeSuggestion

	for _, ids := range blocks {
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				key := pairKey(ids[i], ids[j])
				if seen[key] {
					continue
				}
				seen[key] = true

				a, b := g.Get(ids[i]), g.Get(ids[j])
				if a == nil || b == nil {
					continue
				}
				score := score(a, b, cfg)
				if score < cfg.MinScore {
					continue
				}
				out = append(out, MergeSuggestion{
					PersonAID:  a.ID,
					PersonBID:  b.ID,
					Score:      score,
					Confidence: confidenceFor(score),
				})
			}
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// buildBlocks groups person ids by a composite key of soundexed surname
// plus birth-year bucket, so only persons already plausibly similar are
// ever compared against each other.
func buildBlocks(g *types.PersonGraph, cfg *Config) map[string][]string {
	blocks := map[string][]string{}
	for _, p := range g.All() {
		if p.ToAdd || p.Unknown {
			continue
		}
		key := Soundex(surname(p)) + "|" + bucketKey(birthYear(p), cfg.BirthYearBucket)
		blocks[key] = append(blocks[key], p.ID)
	}
	return blocks
}

func pairKey(a, b string) [2]string {
	if a < b {
		return [2]string{a, b}
	}
	return [2]string{b, a}
}

func bucketKey(year, bucketWidth int) string {
	if year == 0 || bucketWidth <= 0 {
		return "?"
	}
	return strconv.Itoa(year / bucketWidth)
}

func score(a, b *types.Person, cfg *Config) float64 {
	nameScore := nameSimilarity(fullName(a), fullName(b))
	dateScore := birthYearSimilarity(birthYear(a), birthYear(b), cfg.BirthYearTolerance)
	genderScore := 0.0
	if a.Gender() != types.GenderUnknown && a.Gender() == b.Gender() {
		genderScore = 1.0
	}
	return nameScore*cfg.NameWeight + dateScore*cfg.BirthYearWeight + genderScore*cfg.GenderWeight
}

func confidenceFor(score float64) string {
	switch {
	case score >= 0.90:
		return "high"
	case score >= 0.75:
		return "medium"
	default:
		return "low"
	}
}

func nameSimilarity(a, b string) float64 {
	a, b = strings.ToLower(strings.TrimSpace(a)), strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1.0
	}
	return phoneticSimilarity(a, b)
}

func birthYearSimilarity(a, b, tolerance int) float64 {
	if a == 0 || b == 0 {
		return 0
	}
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	if diff == 0 {
		return 1.0
	}
	if diff <= tolerance {
		return 1.0 - float64(diff)/float64(tolerance+1)
	}
	return 0
}

func surname(p *types.Person) string {
	if v, ok := p.Data["surname"].(string); ok {
		return v
	}
	return ""
}

func fullName(p *types.Person) string {
	given, _ := p.Data["given_name"].(string)
	return strings.TrimSpace(given + " " + surname(p))
}

// birthYear extracts a four-digit year from the free-form "birth_date"
// attribute, tolerating either a bare year or a "YYYY-MM-DD" value.
// Returns 0 if absent or unparsable.
func birthYear(p *types.Person) int {
	v, ok := p.Data["birth_date"].(string)
	if !ok || len(v) < 4 {
		return 0
	}
	year, err := strconv.Atoi(v[:4])
	if err != nil {
		return 0
	}
	return year
}
