package rewards

// Summary is the citizen-facing view of the ledger.
type Summary struct {
	Points          int
	Badges          []string
	NextBadge       string
	PointsToNext    int
	AllBadgesEarned bool
}

func NewSummary(points int, badges []string) Summary {
	s := Summary{Points: points, Badges: badges}
	if s.Badges == nil {
		s.Badges = []string{}
	}
	if next, remaining, ok := NextBadge(points); ok {
		s.NextBadge = next.Name
		s.PointsToNext = remaining
	} else {
		s.AllBadgesEarned = true
	}
	return s
}
