package rbac

import "go-workboard/internal/domain"

const (
	ResourceEmployee        = "employee"
	ResourceProject         = "project"
	ResourceTask            = "task"
	ResourceIndependentWork = "independent_work"
	ResourceDashboard       = "dashboard"
)

const (
	ActionRead    = "read"
	ActionCreate  = "create"
	ActionUpdate  = "update"
	ActionDelete  = "delete"
	ActionExport  = "export"
	ActionComment = "comment"
	ActionRemark  = "remark"
	ActionRequest = "request"
	ActionRespond = "respond"
)

type Permission struct {
	Resource string
	Action   string
}

// Each role inherits everything granted to the roles below it.
var roleInheritance = [][2]string{
	{domain.RoleDirector, domain.RoleProjectHead},
	{domain.RoleProjectHead, domain.RoleEmployee},
}

var rolePermissions = map[string][]Permission{
	domain.RoleEmployee: {
		{ResourceEmployee, ActionRead},
		{ResourceProject, ActionRead},
		{ResourceProject, ActionComment},
		{ResourceTask, ActionRead},
		{ResourceTask, ActionComment},
		{ResourceTask, ActionRequest},
		{ResourceIndependentWork, ActionRead},
		{ResourceIndependentWork, ActionCreate},
		{ResourceIndependentWork, ActionUpdate},
		{ResourceIndependentWork, ActionDelete},
		{ResourceIndependentWork, ActionComment},
		{ResourceDashboard, ActionRead},
	},
	domain.RoleProjectHead: {
		{ResourceProject, ActionUpdate},
		{ResourceProject, ActionRemark},
		{ResourceTask, ActionCreate},
		{ResourceTask, ActionUpdate},
		{ResourceTask, ActionDelete},
		{ResourceTask, ActionRespond},
	},
	domain.RoleDirector: {
		{ResourceEmployee, ActionCreate},
		{ResourceEmployee, ActionUpdate},
		{ResourceEmployee, ActionDelete},
		{ResourceEmployee, ActionExport},
		{ResourceProject, ActionCreate},
		{ResourceProject, ActionDelete},
	},
}
