package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicateKey = errors.New("duplicate record")

// Store is the storage contract the repository layer depends on. Atomic
// hands the callback a Store scoped to a single database transaction.
//
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate
//counterfeiter:generate -o fake -fake-name Store . Store
type Store interface {
	MigrateTable(tbl ...any) error
	Create(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any, preloads ...string) error
	FindWhere(ctx context.Context, entity any, order string, query string, args []any, preloads ...string) error
	UpdateColumns(ctx context.Context, model any, updates map[string]any, query string, args ...any) (int64, error)
	IncrementColumn(ctx context.Context, model any, column string, query string, args ...any) error
	Atomic(fn func(tx Store) error) error
}

type PostgresDB struct {
	db *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		db: db,
	}, nil
}

// NewWithGorm wraps an already opened gorm connection.
func NewWithGorm(db *gorm.DB) *PostgresDB {
	return &PostgresDB{
		db: db,
	}
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.db.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *PostgresDB) Create(ctx context.Context, record any) error {
	if err := f.db.WithContext(ctx).Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", ErrDuplicateKey, err)
		}
		return fmt.Errorf("insert record: %w", err)
	}

	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any, preloads ...string) error {
	tx := f.db.WithContext(ctx)
	for _, preload := range preloads {
		tx = tx.Preload(preload)
	}

	err := tx.Where(fmt.Sprintf("%s = ?", column), value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) FindWhere(ctx context.Context, entity any, order string, query string, args []any, preloads ...string) error {
	tx := f.db.WithContext(ctx)
	for _, preload := range preloads {
		tx = tx.Preload(preload)
	}
	if order != "" {
		tx = tx.Order(order)
	}

	if err := tx.Where(query, args...).Find(entity).Error; err != nil {
		return fmt.Errorf("getting records by %q: %w", query, err)
	}
	return nil
}

func (f *PostgresDB) UpdateColumns(ctx context.Context, model any, updates map[string]any, query string, args ...any) (int64, error) {
	tx := f.db.WithContext(ctx).Model(model).Where(query, args...).Updates(updates)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrDuplicatedKey) {
			return 0, fmt.Errorf("%w: %s", ErrDuplicateKey, tx.Error)
		}
		return 0, fmt.Errorf("updating records by %q: %w", query, tx.Error)
	}
	return tx.RowsAffected, nil
}

func (f *PostgresDB) IncrementColumn(ctx context.Context, model any, column string, query string, args ...any) error {
	expr := gorm.Expr(fmt.Sprintf("%s + ?", column), 1)
	tx := f.db.WithContext(ctx).Model(model).Where(query, args...).UpdateColumn(column, expr)
	if tx.Error != nil {
		return fmt.Errorf("incrementing %q: %w", column, tx.Error)
	}
	return nil
}

func (f *PostgresDB) Atomic(fn func(tx Store) error) error {
	return f.db.Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresDB{db: tx})
	})
}
