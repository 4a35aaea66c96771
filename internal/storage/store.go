// Package storage persists portfolio content with gorm and seeds the default
// catalog on first run.
package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/aTrapDeer/portfolio-backend/internal/content"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Options selects the database behind a Store.
type Options struct {
	Driver   string
	DSN      string
	LogLevel logger.LogLevel
}

// Store owns every persisted row. It is safe for concurrent use; conflicting
// writes are serialized by the database.
type Store struct {
	db  *gorm.DB
	now func() time.Time

	mu        sync.Mutex
	seedState SeedState
	seedErr   error
}

// Open connects to the configured database and migrates the schema. The
// connection is not pinged, so an unreachable server only surfaces on the
// first statement.
func Open(opts Options) (*Store, error) {
	var dialector gorm.Dialector
	switch opts.Driver {
	case "", DriverSQLite:
		dialector = sqlite.Open(opts.DSN)
	case DriverPostgres:
		dialector = postgres.Open(opts.DSN)
	default:
		return nil, fmt.Errorf("unsupported database type %q", opts.Driver)
	}

	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Warn
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError:       true,
		DisableAutomaticPing: true,
		Logger: logger.New(log.New(os.Stderr, "", log.LstdFlags), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  opts.LogLevel,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if opts.Driver == "" || opts.Driver == DriverSQLite {
		// sqlite allows a single writer; one connection avoids "database is locked".
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return New(db), nil
}

// Migrate creates or updates the five content tables.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&content.User{},
		&content.ContactMessage{},
		&content.Project{},
		&content.Experience{},
		&content.Skill{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// New wraps an already migrated database handle.
func New(db *gorm.DB) *Store {
	return &Store{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

var displayOrder = clause.OrderBy{Columns: []clause.OrderByColumn{
	{Column: clause.Column{Name: "order"}},
	{Column: clause.Column{Name: "id"}},
}}

var createdOrder = clause.OrderBy{Columns: []clause.OrderByColumn{
	{Column: clause.Column{Name: "created_at"}},
	{Column: clause.Column{Name: "id"}},
}}

func (s *Store) GetUser(ctx context.Context, id uint) (*content.User, error) {
	var user content.User
	err := s.db.WithContext(ctx).Where("id = ?", id).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("get user", err)
	}
	return &user, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*content.User, error) {
	var user content.User
	err := s.db.WithContext(ctx).Where("username = ?", username).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("get user by username", err)
	}
	return &user, nil
}

// CreateUser stores in.Password as given. Callers hash it first.
// The unique index on username backs the lookup below for concurrent inserts.
func (s *Store) CreateUser(ctx context.Context, in content.NewUser) (content.User, error) {
	existing, err := s.GetUserByUsername(ctx, in.Username)
	if err != nil {
		return content.User{}, err
	}
	if existing != nil {
		return content.User{}, &StorageError{
			Op:  "create user",
			Err: fmt.Errorf("%w: username %q already exists", ErrUniqueViolation, in.Username),
		}
	}

	user := content.User{Username: in.Username, Password: in.Password}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return content.User{}, wrap("create user", err)
	}
	return user, nil
}

func (s *Store) CreateContactMessage(ctx context.Context, in content.NewContactMessage) (content.ContactMessage, error) {
	msg := content.ContactMessage{
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: s.now(),
	}
	if err := s.db.WithContext(ctx).Create(&msg).Error; err != nil {
		return content.ContactMessage{}, wrap("create contact message", err)
	}
	return msg, nil
}

// GetContactMessages returns every message, oldest first.
func (s *Store) GetContactMessages(ctx context.Context) ([]content.ContactMessage, error) {
	messages := []content.ContactMessage{}
	if err := s.db.WithContext(ctx).Order(createdOrder).Find(&messages).Error; err != nil {
		return nil, wrap("get contact messages", err)
	}
	return messages, nil
}

func (s *Store) CountContactMessages(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&content.ContactMessage{}).Count(&n).Error; err != nil {
		return 0, wrap("count contact messages", err)
	}
	return n, nil
}

func (s *Store) GetProjects(ctx context.Context) ([]content.Project, error) {
	projects := []content.Project{}
	if err := s.db.WithContext(ctx).Order(displayOrder).Find(&projects).Error; err != nil {
		return nil, wrap("get projects", err)
	}
	return projects, nil
}

func (s *Store) GetFeaturedProjects(ctx context.Context) ([]content.Project, error) {
	projects := []content.Project{}
	err := s.db.WithContext(ctx).Where("is_featured = ?", true).Order(displayOrder).Find(&projects).Error
	if err != nil {
		return nil, wrap("get featured projects", err)
	}
	return projects, nil
}

func (s *Store) CountProjects(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&content.Project{}).Count(&n).Error; err != nil {
		return 0, wrap("count projects", err)
	}
	return n, nil
}

func (s *Store) CreateProject(ctx context.Context, in content.NewProject) (content.Project, error) {
	project := projectRecord(in)
	if err := s.db.WithContext(ctx).Create(&project).Error; err != nil {
		return content.Project{}, wrap("create project", err)
	}
	return project, nil
}

func (s *Store) GetExperiences(ctx context.Context) ([]content.Experience, error) {
	experiences := []content.Experience{}
	if err := s.db.WithContext(ctx).Order(displayOrder).Find(&experiences).Error; err != nil {
		return nil, wrap("get experiences", err)
	}
	return experiences, nil
}

func (s *Store) CreateExperience(ctx context.Context, in content.NewExperience) (content.Experience, error) {
	experience := experienceRecord(in)
	if err := s.db.WithContext(ctx).Create(&experience).Error; err != nil {
		return content.Experience{}, wrap("create experience", err)
	}
	return experience, nil
}

func (s *Store) GetSkills(ctx context.Context) ([]content.Skill, error) {
	skills := []content.Skill{}
	if err := s.db.WithContext(ctx).Order(displayOrder).Find(&skills).Error; err != nil {
		return nil, wrap("get skills", err)
	}
	return skills, nil
}

// GetSkillsByCategory matches category exactly. Unknown categories yield an
// empty list.
func (s *Store) GetSkillsByCategory(ctx context.Context, category string) ([]content.Skill, error) {
	skills := []content.Skill{}
	err := s.db.WithContext(ctx).Where("category = ?", category).Order(displayOrder).Find(&skills).Error
	if err != nil {
		return nil, wrap("get skills by category", err)
	}
	return skills, nil
}

func (s *Store) CreateSkill(ctx context.Context, in content.NewSkill) (content.Skill, error) {
	skill := skillRecord(in)
	if err := s.db.WithContext(ctx).Create(&skill).Error; err != nil {
		return content.Skill{}, wrap("create skill", err)
	}
	return skill, nil
}

func projectRecord(in content.NewProject) content.Project {
	return content.Project{
		Title:        in.Title,
		Description:  in.Description,
		ImageURL:     in.ImageURL,
		Technologies: nonNil(in.Technologies),
		GithubURL:    in.GithubURL,
		LiveURL:      in.LiveURL,
		IsFeatured:   in.IsFeatured,
		Order:        in.Order,
	}
}

func experienceRecord(in content.NewExperience) content.Experience {
	return content.Experience{
		Title:            in.Title,
		Company:          in.Company,
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
		Description:      in.Description,
		Responsibilities: nonNil(in.Responsibilities),
		Order:            in.Order,
	}
}

func skillRecord(in content.NewSkill) content.Skill {
	skill := content.Skill{Name: in.Name, Category: in.Category, Order: in.Order}
	if in.Percentage != nil {
		skill.Percentage = *in.Percentage
	}
	return skill
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
