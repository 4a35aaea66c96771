package storage

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/aTrapDeer/portfolio-backend/internal/content"
)

// SeedState records the outcome of the first-run seeding step.
type SeedState int

const (
	SeedUnchecked SeedState = iota
	Seeded
	AlreadyPopulated
	SeedFailed
)

func (s SeedState) String() string {
	switch s {
	case SeedUnchecked:
		return "unchecked"
	case Seeded:
		return "seeded"
	case AlreadyPopulated:
		return "already populated"
	case SeedFailed:
		return "seed failed"
	}
	return fmt.Sprintf("SeedState(%d)", int(s))
}

// Catalog is the content inserted into an empty store.
type Catalog struct {
	Projects    []content.NewProject
	Experiences []content.NewExperience
	Skills      []content.NewSkill
}

// SeedState returns the outcome of Seed, or SeedUnchecked before it ran.
func (s *Store) SeedState() SeedState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seedState
}

// Seed inserts DefaultCatalog when the store holds no project.
func (s *Store) Seed(ctx context.Context) (SeedState, error) {
	return s.SeedWith(ctx, DefaultCatalog())
}

// SeedWith runs the seeding step once per Store; later calls return the first
// outcome. Any existing project counts as populated for all three catalogs.
// The catalog is inserted in a single transaction, so a failure leaves no
// partial content behind.
func (s *Store) SeedWith(ctx context.Context, catalog Catalog) (SeedState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seedState != SeedUnchecked {
		return s.seedState, s.seedErr
	}
	s.seedState, s.seedErr = s.seed(ctx, catalog)
	return s.seedState, s.seedErr
}

func (s *Store) seed(ctx context.Context, catalog Catalog) (SeedState, error) {
	n, err := s.CountProjects(ctx)
	if err != nil {
		return SeedFailed, err
	}
	if n > 0 {
		return AlreadyPopulated, nil
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, in := range catalog.Projects {
			project := projectRecord(in)
			if err := tx.Create(&project).Error; err != nil {
				return fmt.Errorf("project %q: %w", in.Title, err)
			}
		}
		for _, in := range catalog.Experiences {
			experience := experienceRecord(in)
			if err := tx.Create(&experience).Error; err != nil {
				return fmt.Errorf("experience %q: %w", in.Title, err)
			}
		}
		for _, in := range catalog.Skills {
			skill := skillRecord(in)
			if err := tx.Create(&skill).Error; err != nil {
				return fmt.Errorf("skill %q: %w", in.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return SeedFailed, wrap("seed default content", err)
	}
	return Seeded, nil
}
