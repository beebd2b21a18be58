package complaint

import (
	"math"
	"time"

	vo "civicpulse/internal/domain/complaint/valueobjects"
)

type DepartmentCount struct {
	Department vo.Department
	Count      int
}

// Stats summarizes a set of complaints for the admin analytics view.
type Stats struct {
	Total              int
	Pending            int
	InProgress         int
	Resolved           int
	ByDepartment       []DepartmentCount
	AvgResolutionHours int
	ResolutionRatePct  int
	FiledSinceDayStart int
}

// ComputeStats aggregates complaints. Departments are listed in order of
// first appearance. Complaints created at or after dayStart count as filed
// today.
func ComputeStats(complaints []*Complaint, dayStart time.Time) Stats {
	var st Stats
	index := make(map[vo.Department]int)
	var resolvedCount int
	var resolutionTotal time.Duration

	for _, c := range complaints {
		st.Total++
		switch c.Status() {
		case vo.StatusPending:
			st.Pending++
		case vo.StatusInProgress:
			st.InProgress++
		case vo.StatusResolved:
			st.Resolved++
		}

		if i, ok := index[c.Department()]; ok {
			st.ByDepartment[i].Count++
		} else {
			index[c.Department()] = len(st.ByDepartment)
			st.ByDepartment = append(st.ByDepartment, DepartmentCount{Department: c.Department(), Count: 1})
		}

		if d, ok := c.ResolutionTime(); ok {
			resolvedCount++
			resolutionTotal += d
		}

		if !c.CreatedAt().Before(dayStart) {
			st.FiledSinceDayStart++
		}
	}

	if resolvedCount > 0 {
		avg := resolutionTotal.Hours() / float64(resolvedCount)
		st.AvgResolutionHours = int(math.Round(avg))
	}
	if st.Total > 0 {
		st.ResolutionRatePct = int(math.Round(float64(st.Resolved) / float64(st.Total) * 100))
	}

	return st
}
