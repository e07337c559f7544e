package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	defaultSQLitePath = "sweetbliss.db"
)

// Open connects to the configured store without migrating it.
func Open(driver, dsn string) (*gorm.DB, error) {
	return OpenWithLogger(driver, dsn, logger.Default.LogMode(logger.Warn))
}

// OpenWithLogger is Open with an explicit gorm logger.
func OpenWithLogger(driver, dsn string, l logger.Interface) (*gorm.DB, error) {
	dialector, err := dialectorFor(driver, dsn)
	if err != nil {
		return nil, err
	}
	return gorm.Open(dialector, &gorm.Config{Logger: l})
}

// Init opens the store and brings its schema up to date.
func Init(driver, dsn string) (*gorm.DB, error) {
	gdb, err := Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if err := Migrate(gdb); err != nil {
		return nil, err
	}
	return gdb, nil
}

// Migrate creates or updates every table the site needs.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&User{},
		&Page{},
		&PageRevision{},
		&Site{},
		&GlobalSEOSettings{},
		&ProductCategory{},
		&Partner{},
		&Brand{},
		&Product{},
		&TeamMember{},
		&ContactSubmission{},
		&RedirectRule{},
	)
}

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", DriverSQLite:
		path := strings.TrimSpace(dsn)
		if path == "" {
			path = defaultSQLitePath
		}
		if isSQLiteFile(path) {
			if err := ensureParentDir(path); err != nil {
				return nil, err
			}
		}
		return sqlite.Open(path), nil
	case DriverPostgres:
		if strings.TrimSpace(dsn) == "" {
			return nil, errors.New("postgres driver requires a dsn")
		}
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

func isSQLiteFile(path string) bool {
	return path != ":memory:" && !strings.HasPrefix(path, "file:")
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
