package rewards

// Badge is awarded once the cumulative point total reaches Threshold.
type Badge struct {
	Name      string
	Threshold int
}

// Badges is the award table, ordered by threshold.
var Badges = []Badge{
	{Name: "Community Helper", Threshold: 100},
	{Name: "Civic Champion", Threshold: 200},
	{Name: "City Guardian", Threshold: 300},
	{Name: "Urban Hero", Threshold: 500},
}

// NewlyEarned returns the badges whose threshold points has reached and that
// are not already in earned, in table order.
func NewlyEarned(points int, earned []string) []string {
	have := make(map[string]struct{}, len(earned))
	for _, b := range earned {
		have[b] = struct{}{}
	}

	var out []string
	for _, b := range Badges {
		if points < b.Threshold {
			continue
		}
		if _, ok := have[b.Name]; ok {
			continue
		}
		out = append(out, b.Name)
	}
	return out
}

// NextBadge returns the first badge not yet reached by points, and the points
// still needed. ok is false once every badge is within reach.
func NextBadge(points int) (badge Badge, remaining int, ok bool) {
	for _, b := range Badges {
		if points < b.Threshold {
			return b, b.Threshold - points, true
		}
	}
	return Badge{}, 0, false
}
