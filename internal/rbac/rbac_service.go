package rbac

import (
	"sort"
	"sync"

	"go-workboard/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadPolicy() error
	Enforce(req domain.EnforceRequest) (bool, error)
	PermissionsForRole(role string) ([]string, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

func NewService(enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{enforcer: enforcer, logger: l}
}

func (s *service) LoadPolicy() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()

	for _, pair := range roleInheritance {
		if _, err := s.enforcer.AddGroupingPolicy(pair[0], pair[1]); err != nil {
			return err
		}
	}

	count := 0
	for role, perms := range rolePermissions {
		for _, p := range perms {
			if _, err := s.enforcer.AddPolicy(role, p.Resource, p.Action); err != nil {
				return err
			}
			count++
		}
	}

	s.logger.Info("rbac policy loaded", zap.Int("rules", count))
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !domain.IsValidRole(req.Role) {
		s.logger.Debug("rbac enforce unknown role", zap.String("role", req.Role))
		return false, nil
	}

	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

// PermissionsForRole returns "resource:action" strings including inherited grants, sorted.
func (s *service) PermissionsForRole(role string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !domain.IsValidRole(role) {
		return []string{}, nil
	}

	rules, err := s.enforcer.GetImplicitPermissionsForUser(role)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(rules))
	perms := make([]string, 0, len(rules))
	for _, rule := range rules {
		if len(rule) < 3 {
			continue
		}
		key := rule[1] + ":" + rule[2]
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		perms = append(perms, key)
	}
	sort.Strings(perms)

	return perms, nil
}
