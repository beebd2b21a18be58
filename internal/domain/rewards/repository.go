package rewards

import "context"

// Repository stores the process-wide point total and earned badge set.
// Absent or unreadable values read as zero points and no badges.
type Repository interface {
	GetPoints(ctx context.Context) (int, error)
	SetPoints(ctx context.Context, points int) error
	GetBadges(ctx context.Context) ([]string, error)
	SetBadges(ctx context.Context, badges []string) error
}
