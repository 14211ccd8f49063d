// Package suggest ranks every loaded profile against an analyzed job
// description and recommends the best fit.
package suggest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mihai/cvscope/internal/lexicon"
	"github.com/mihai/cvscope/internal/normalize"
	"github.com/mihai/cvscope/internal/types"
)

// Resolver is the slice of the lexicon store the suggester reads.
type Resolver interface {
	Profiles(domainFilter string) []lexicon.Profile
	ResolveEffectiveKeywords(profileID string, lang types.Language) (types.EffectiveKeywordSet, error)
}

// Suggest scores every profile by summing the extraction scores of its
// effective keywords found among jdKeywords, normalized by the profile's
// keyword-set size so large profiles carry no inherent advantage. Profiles
// come back in descending score order; equal scores keep declaration order
// (domain order, then profile order within the domain). Empty jdKeywords is
// not an error: every profile scores zero, in declared order.
func Suggest(store Resolver, jdKeywords []types.RankedKeyword, lang types.Language) ([]types.ProfileScore, error) {
	jdScores := make(map[string]float64, len(jdKeywords))
	for _, kw := range jdKeywords {
		canonical := canonicalTerm(kw.Keyword)
		if canonical == "" {
			continue
		}
		// keep the higher score when two spellings collapse
		if kw.Score > jdScores[canonical] {
			jdScores[canonical] = kw.Score
		}
	}

	profiles := store.Profiles("")
	scores := make([]types.ProfileScore, 0, len(profiles))
	for _, p := range profiles {
		set, err := store.ResolveEffectiveKeywords(p.ID, lang)
		if err != nil {
			return nil, fmt.Errorf("scoring profile %s: %w", p.ID, err)
		}

		var sum float64
		var matched []string
		for _, kw := range set.Keywords {
			if s, ok := jdScores[canonicalTerm(kw)]; ok {
				sum += s
				matched = append(matched, kw)
			}
		}

		score := 0.0
		if set.Size() > 0 {
			score = sum / float64(set.Size())
		}
		scores = append(scores, types.ProfileScore{
			ProfileID: p.ID,
			Label:     p.Title.For(lang),
			Domain:    p.Domain,
			Score:     score,
			Matched:   matched,
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	return scores, nil
}

// Best returns the top suggestion, or false when no profiles are loaded.
func Best(scores []types.ProfileScore) (types.ProfileScore, bool) {
	if len(scores) == 0 {
		return types.ProfileScore{}, false
	}
	return scores[0], true
}

func canonicalTerm(kw string) string {
	return strings.Join(normalize.Tokens(kw), " ")
}
