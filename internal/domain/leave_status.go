package domain

import (
	"errors"
	"fmt"
)

type LeaveStatus string

const (
	LeaveStatusPending   LeaveStatus = "pending"
	LeaveStatusApproved  LeaveStatus = "approved"
	LeaveStatusRejected  LeaveStatus = "rejected"
	LeaveStatusCancelled LeaveStatus = "cancelled"
)

type LeaveAction string

const (
	LeaveActionApprove LeaveAction = "approve"
	LeaveActionReject  LeaveAction = "reject"
	LeaveActionCancel  LeaveAction = "cancel"
)

var ErrInvalidTransition = errors.New("invalid leave status transition")

// transitions lists every legal move. Only pending has outgoing edges, so
// terminal states can never be left and nothing ever returns to pending.
var transitions = map[LeaveStatus]map[LeaveAction]LeaveStatus{
	LeaveStatusPending: {
		LeaveActionApprove: LeaveStatusApproved,
		LeaveActionReject:  LeaveStatusRejected,
		LeaveActionCancel:  LeaveStatusCancelled,
	},
}

func ParseLeaveStatus(v string) (LeaveStatus, bool) {
	s := LeaveStatus(v)
	switch s {
	case LeaveStatusPending, LeaveStatusApproved, LeaveStatusRejected, LeaveStatusCancelled:
		return s, true
	default:
		return "", false
	}
}

func (s LeaveStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// Apply returns the status reached by performing a on s.
func (s LeaveStatus) Apply(a LeaveAction) (LeaveStatus, error) {
	next, ok := transitions[s][a]
	if !ok {
		return s, fmt.Errorf("%w: cannot %s a %s request", ErrInvalidTransition, a, s)
	}
	return next, nil
}

func (s LeaveStatus) String() string {
	return string(s)
}
