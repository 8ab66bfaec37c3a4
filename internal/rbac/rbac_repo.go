package rbac

import "leaveflow/internal/domain"

const (
	ResourceLeave     = "leave"
	ResourceBalance   = "balance"
	ResourceDashboard = "dashboard"
	ResourceEmployee  = "employee"
	ResourceReport    = "report"

	ActionRead    = "read"
	ActionCreate  = "create"
	ActionCancel  = "cancel"
	ActionApprove = "approve"
	ActionReview  = "review"
	ActionManage  = "manage"
	ActionExport  = "export"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetRoleInheritance() ([]RoleInheritanceRow, error)
	GetRolePermissions() ([]RolePermissionRow, error)
}

type RoleInheritanceRow struct {
	Role   string
	Parent string
}

type RolePermissionRow struct {
	Role     string
	Resource string
	Action   string
}

// repository serves the fixed two-role policy. Admins inherit every
// employee permission.
type repository struct {
	inheritance []RoleInheritanceRow
	permissions []RolePermissionRow
}

func NewRepository() Repository {
	employee := string(domain.RoleEmployee)
	admin := string(domain.RoleAdmin)

	return &repository{
		inheritance: []RoleInheritanceRow{
			{Role: admin, Parent: employee},
		},
		permissions: []RolePermissionRow{
			{Role: employee, Resource: ResourceLeave, Action: ActionRead},
			{Role: employee, Resource: ResourceLeave, Action: ActionCreate},
			{Role: employee, Resource: ResourceLeave, Action: ActionCancel},
			{Role: employee, Resource: ResourceBalance, Action: ActionRead},
			{Role: employee, Resource: ResourceDashboard, Action: ActionRead},

			{Role: admin, Resource: ResourceLeave, Action: ActionApprove},
			{Role: admin, Resource: ResourceLeave, Action: ActionReview},
			{Role: admin, Resource: ResourceBalance, Action: ActionManage},
			{Role: admin, Resource: ResourceEmployee, Action: ActionRead},
			{Role: admin, Resource: ResourceReport, Action: ActionExport},
		},
	}
}

func (r *repository) GetRoleInheritance() ([]RoleInheritanceRow, error) {
	return r.inheritance, nil
}

func (r *repository) GetRolePermissions() ([]RolePermissionRow, error) {
	return r.permissions, nil
}
