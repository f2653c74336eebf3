package dashboard

type EmployeeStats struct {
	Total   int64 `json:"total"`
	Active  int64 `json:"active"`
	OnLeave int64 `json:"onLeave"`
}

type StatsResponse struct {
	// Employees is only filled in for Directors.
	Employees                 *EmployeeStats   `json:"employees,omitempty"`
	ProjectsByStatus          map[string]int64 `json:"projectsByStatus"`
	TotalProjects             int64            `json:"totalProjects"`
	TasksByStatus             map[string]int64 `json:"tasksByStatus"`
	TotalTasks                int64            `json:"totalTasks"`
	OverdueTasks              int64            `json:"overdueTasks"`
	PendingExtensionRequests  int64            `json:"pendingExtensionRequests"`
	PendingCompletionRequests int64            `json:"pendingCompletionRequests"`
}

type ProjectOverview struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ProjectNumber  string `json:"projectNumber"`
	Status         string `json:"status"`
	StatusColor    string `json:"statusColor"`
	Progress       int    `json:"progress"`
	TotalTasks     int64  `json:"totalTasks"`
	CompletedTasks int64  `json:"completedTasks"`
	OverdueTasks   int64  `json:"overdueTasks"`
}
