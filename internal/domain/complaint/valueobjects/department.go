package valueobjects

import (
	"fmt"
	"strings"
)

// Department is the municipal department a complaint is routed to. The set is
// open: routing rules loaded at startup may name departments not listed here.
type Department string

const (
	DepartmentRoadTransport Department = "Road & Transport"
	DepartmentSanitation    Department = "Sanitation & Drainage"
	DepartmentElectricity   Department = "Electricity & Lighting"
	DepartmentEnvironment   Department = "Environment"
	DepartmentOthers        Department = "Others"
)

func (d Department) String() string {
	return string(d)
}

func (d Department) IsEmpty() bool {
	return strings.TrimSpace(string(d)) == ""
}

func NewDepartment(s string) (Department, error) {
	d := Department(strings.TrimSpace(s))
	if d.IsEmpty() {
		return "", fmt.Errorf("department name is required")
	}
	return d, nil
}
