package domain

type LeaveType string

const (
	LeaveTypeAnnual    LeaveType = "Annual"
	LeaveTypeSick      LeaveType = "Sick"
	LeaveTypeCasual    LeaveType = "Casual"
	LeaveTypeMaternity LeaveType = "Maternity"
)

var leaveTypes = []LeaveType{
	LeaveTypeAnnual,
	LeaveTypeSick,
	LeaveTypeCasual,
	LeaveTypeMaternity,
}

var defaultTotalDays = map[LeaveType]int{
	LeaveTypeAnnual:    15,
	LeaveTypeSick:      10,
	LeaveTypeCasual:    7,
	LeaveTypeMaternity: 90,
}

var leaveColors = map[LeaveType]string{
	LeaveTypeAnnual:    "#22c55e",
	LeaveTypeSick:      "#ef4444",
	LeaveTypeCasual:    "#3b82f6",
	LeaveTypeMaternity: "#a855f7",
}

// LeaveTypes returns the fixed leave types in display order.
func LeaveTypes() []LeaveType {
	out := make([]LeaveType, len(leaveTypes))
	copy(out, leaveTypes)
	return out
}

func ParseLeaveType(v string) (LeaveType, bool) {
	t := LeaveType(v)
	if !t.Valid() {
		return "", false
	}
	return t, true
}

func (t LeaveType) Valid() bool {
	_, ok := defaultTotalDays[t]
	return ok
}

func (t LeaveType) DefaultTotalDays() int {
	return defaultTotalDays[t]
}

func (t LeaveType) Color() string {
	return leaveColors[t]
}

// Order is the position of t in LeaveTypes, or len(LeaveTypes) if unknown.
func (t LeaveType) Order() int {
	for i, lt := range leaveTypes {
		if lt == t {
			return i
		}
	}
	return len(leaveTypes)
}

func (t LeaveType) String() string {
	return string(t)
}
