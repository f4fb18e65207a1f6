package roadmap

import "sort"

// ScoreCategory scores every resource with the category's rule table and
// returns the recommendations ordered by priority. Ties keep catalog order.
func ScoreCategory(resources []Resource, answers AssessmentAnswers, category Category) []PersonalizedRecommendation {
	return score(resources, RuleInput{Answers: answers}, Rules(category))
}

func score(resources []Resource, base RuleInput, rules []Rule) []PersonalizedRecommendation {
	out := make([]PersonalizedRecommendation, 0, len(resources))
	for _, res := range resources {
		if res.Tags == nil {
			res.Tags = []string{}
		}
		in := base
		in.Resource = res
		rec := PersonalizedRecommendation{
			Resource:    res,
			Priority:    baselinePriority,
			Timeframe:   baselineTimeframe,
			RegionMatch: MatchRegion(regionOf(in), res.Region),
		}
		for _, rule := range rules {
			if rule.When(in) {
				rule.Apply(&rec)
			}
		}
		out = append(out, rec)
	}
	sortByPriority(out)
	return out
}

func regionOf(in RuleInput) string {
	if in.Answers.Region != "" {
		return in.Answers.Region
	}
	return in.Legacy.Region
}

func sortByPriority(items []PersonalizedRecommendation) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Priority.Rank() < items[j].Priority.Rank()
	})
}

func top(items []PersonalizedRecommendation, n int) []PersonalizedRecommendation {
	if len(items) > n {
		return items[:n]
	}
	return items
}
