package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"go-workboard/internal/domain"
	"go-workboard/internal/metrics"
	"go-workboard/internal/status"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const statsTTL = 60 * time.Second

func StatsKey(actor domain.Actor) string {
	return "dashboard:stats:" + actor.Role + ":" + actor.EmployeeID
}

type Service interface {
	Stats(ctx context.Context, actor domain.Actor) (StatsResponse, error)
	Projects(ctx context.Context, actor domain.Actor) ([]ProjectOverview, error)
	Statuses() map[string][]status.Option
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func sum(m map[string]int64) int64 {
	var total int64
	for _, n := range m {
		total += n
	}
	return total
}

func (s *service) Stats(ctx context.Context, actor domain.Actor) (StatsResponse, error) {
	key := StatsKey(actor)
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var resp StatsResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				metrics.IncrementCacheLookup("dashboard_stats", true)
				return resp, nil
			}
		}
		metrics.IncrementCacheLookup("dashboard_stats", false)
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		resp, err := s.computeStats(ctx, actor)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, key, data, statsTTL).Err(); err != nil {
					s.logger.Warn("cache dashboard stats failed", zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("dashboard stats failed",
			zap.String("actor_id", actor.EmployeeID),
			zap.Error(err),
		)
		return StatsResponse{}, err
	}
	return v.(StatsResponse), nil
}

func (s *service) computeStats(ctx context.Context, actor domain.Actor) (StatsResponse, error) {
	var resp StatsResponse

	if actor.IsDirector() {
		byStatus, err := s.repo.CountEmployeesByStatus(ctx)
		if err != nil {
			return StatsResponse{}, err
		}
		resp.Employees = &EmployeeStats{
			Total:   sum(byStatus),
			Active:  byStatus[status.EmployeeActive],
			OnLeave: byStatus[status.EmployeeOnLeave],
		}
	}

	projects, err := s.repo.CountProjectsByStatus(ctx, actor)
	if err != nil {
		return StatsResponse{}, err
	}
	tasks, err := s.repo.CountTasks(ctx, actor)
	if err != nil {
		return StatsResponse{}, err
	}

	resp.ProjectsByStatus = withZeros(status.KindProject, projects)
	resp.TotalProjects = sum(projects)
	resp.TasksByStatus = withZeros(status.KindTask, tasks.ByStatus)
	resp.TotalTasks = sum(tasks.ByStatus)
	resp.OverdueTasks = tasks.ByStatus[status.TaskOverdue]
	resp.PendingExtensionRequests = tasks.PendingExtension
	resp.PendingCompletionRequests = tasks.PendingCompletion
	return resp, nil
}

// withZeros reports every declared value of kind, including those with no rows.
func withZeros(kind string, counts map[string]int64) map[string]int64 {
	out := make(map[string]int64, len(counts))
	for _, v := range status.Values(kind) {
		out[v] = 0
	}
	for k, n := range counts {
		out[k] = n
	}
	return out
}

func (s *service) Projects(ctx context.Context, actor domain.Actor) ([]ProjectOverview, error) {
	s.logger.Debug("dashboard projects requested", zap.String("actor_id", actor.EmployeeID))

	projects, err := s.repo.ListProjects(ctx, actor)
	if err != nil {
		s.logger.Error("dashboard list projects failed", zap.Error(err))
		return nil, err
	}

	ids := make([]string, len(projects))
	for i, p := range projects {
		ids[i] = p.ID.String()
	}
	counts, err := s.repo.CountTasksByProject(ctx, ids)
	if err != nil {
		s.logger.Error("dashboard count project tasks failed", zap.Error(err))
		return nil, err
	}

	resp := make([]ProjectOverview, len(projects))
	for i, p := range projects {
		c := counts[p.ID.String()]
		resp[i] = ProjectOverview{
			ID:             p.ID.String(),
			Name:           p.Name,
			ProjectNumber:  p.ProjectNumber,
			Status:         p.Status,
			StatusColor:    status.ColorFor(status.KindProject, p.Status),
			Progress:       p.Progress,
			TotalTasks:     c.Total,
			CompletedTasks: c.Completed,
			OverdueTasks:   c.Overdue,
		}
	}
	return resp, nil
}

func (s *service) Statuses() map[string][]status.Option {
	return status.Catalog()
}
