// Package directory resolves employee ids to display data for modules that reference employees.
package directory

import (
	"context"

	"gorm.io/gorm"
)

type Person struct {
	ID     string
	Name   string
	Role   string
	Status string
}

type Directory interface {
	// Lookup returns the non-deleted employees among ids, keyed by id. Unknown ids are absent.
	Lookup(ctx context.Context, ids []string) (map[string]Person, error)
}

type gormDirectory struct {
	db *gorm.DB
}

func New(db *gorm.DB) Directory {
	return &gormDirectory{db: db}
}

func (d *gormDirectory) Lookup(ctx context.Context, ids []string) (map[string]Person, error) {
	out := make(map[string]Person, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []struct {
		ID     string
		Name   string
		Role   string
		Status string
	}
	err := d.db.WithContext(ctx).
		Table("employees").
		Select("id, name, role, status").
		Where("id IN ?", ids).
		Where("deleted_at IS NULL").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		out[r.ID] = Person(r)
	}
	return out, nil
}

// Missing returns the ids absent from found, preserving input order without duplicates.
func Missing(ids []string, found map[string]Person) []string {
	seen := make(map[string]struct{}, len(ids))
	var missing []string
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
