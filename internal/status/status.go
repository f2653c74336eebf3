// Package status holds every enumerated value the dashboard displays, with its label color.
package status

const (
	KindEmployee = "employee"
	KindProject  = "project"
	KindTask     = "task"
	KindPriority = "priority"
	KindRequest  = "request"
)

const (
	EmployeeActive   = "Active"
	EmployeeInactive = "Inactive"
	EmployeeOnLeave  = "On Leave"

	ProjectCurrent   = "Current"
	ProjectUpcoming  = "Upcoming"
	ProjectOnHold    = "On Hold"
	ProjectCompleted = "Completed"

	TaskPending    = "Pending"
	TaskInProgress = "In Progress"
	TaskCompleted  = "Completed"
	TaskOverdue    = "Overdue"

	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
	PriorityUrgent = "Urgent"

	RequestNone     = ""
	RequestPending  = "Pending"
	RequestApproved = "Approved"
	RequestRejected = "Rejected"
)

const (
	ColorGreen  = "green"
	ColorBlue   = "blue"
	ColorYellow = "yellow"
	ColorOrange = "orange"
	ColorRed    = "red"
	ColorGray   = "gray"
)

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// ordered as the client renders them
var catalog = map[string][]Option{
	KindEmployee: {
		{Value: EmployeeActive, Label: EmployeeActive, Color: ColorGreen},
		{Value: EmployeeInactive, Label: EmployeeInactive, Color: ColorRed},
		{Value: EmployeeOnLeave, Label: EmployeeOnLeave, Color: ColorYellow},
	},
	KindProject: {
		{Value: ProjectCurrent, Label: ProjectCurrent, Color: ColorGreen},
		{Value: ProjectUpcoming, Label: ProjectUpcoming, Color: ColorBlue},
		{Value: ProjectOnHold, Label: ProjectOnHold, Color: ColorYellow},
		{Value: ProjectCompleted, Label: ProjectCompleted, Color: ColorGray},
	},
	KindTask: {
		{Value: TaskPending, Label: TaskPending, Color: ColorYellow},
		{Value: TaskInProgress, Label: TaskInProgress, Color: ColorBlue},
		{Value: TaskCompleted, Label: TaskCompleted, Color: ColorGreen},
		{Value: TaskOverdue, Label: TaskOverdue, Color: ColorRed},
	},
	KindPriority: {
		{Value: PriorityLow, Label: PriorityLow, Color: ColorGray},
		{Value: PriorityMedium, Label: PriorityMedium, Color: ColorBlue},
		{Value: PriorityHigh, Label: PriorityHigh, Color: ColorOrange},
		{Value: PriorityUrgent, Label: PriorityUrgent, Color: ColorRed},
	},
	KindRequest: {
		{Value: RequestPending, Label: RequestPending, Color: ColorYellow},
		{Value: RequestApproved, Label: RequestApproved, Color: ColorGreen},
		{Value: RequestRejected, Label: RequestRejected, Color: ColorRed},
	},
}

func Kinds() []string {
	return []string{KindEmployee, KindProject, KindTask, KindPriority, KindRequest}
}

// Values lists the declared values of kind in display order.
func Values(kind string) []string {
	opts := catalog[kind]
	values := make([]string, len(opts))
	for i, o := range opts {
		values[i] = o.Value
	}
	return values
}

func IsValid(kind, value string) bool {
	for _, o := range catalog[kind] {
		if o.Value == value {
			return true
		}
	}
	return false
}

// ColorFor falls back to gray for values outside the declared enum.
func ColorFor(kind, value string) string {
	for _, o := range catalog[kind] {
		if o.Value == value {
			return o.Color
		}
	}
	return ColorGray
}

// Catalog returns a copy so callers cannot mutate the shared tables.
func Catalog() map[string][]Option {
	out := make(map[string][]Option, len(catalog))
	for kind, opts := range catalog {
		cp := make([]Option, len(opts))
		copy(cp, opts)
		out[kind] = cp
	}
	return out
}
