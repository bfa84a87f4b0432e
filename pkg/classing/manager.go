// Package classing stores the class configuration an event scores
// against: base classes, their PAX index values and class-group merges.
package classing

import (
	"database/sql"
	"strings"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/MagicAardvark/race-results-sub000/pkg/model"
)

var (
	ErrDuplicateShortName = errors.New("a class with that short name already exists")
	ErrUnknownClass       = errors.New("no class with that short name exists")
)

// Manager is a sqlite-backed class configuration store. Short names are
// stored uppercased, matching how snapshots are keyed during scoring.
type Manager struct {
	db *sql.DB
	mu sync.Mutex
}

func NewManager(dbPath string) (*Manager, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, errors.Wrap(err, "opening class database")
	}

	if _, err := db.Exec(buildCreateClassesTable()); err != nil {
		return nil, errors.Wrap(err, "initializing class database")
	}

	return &Manager{db: db}, nil
}

func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.db.Close()
}

// CreateClass adds one class. The short name must be unused.
func (m *Manager) CreateClass(info model.ClassInfo) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	info.ShortName = strings.ToUpper(info.ShortName)
	exists, err := m.classExists(info.ShortName)
	if err != nil {
		return err
	}
	if exists {
		return errors.Wrap(ErrDuplicateShortName, info.ShortName)
	}

	_, err = m.db.Exec(buildInsertClassCommand(),
		info.ShortName, info.ClassID, info.LongName, info.IndexValue,
		groupIDValue(info), nullable(info.GroupShortName), nullable(info.GroupLongName))
	return errors.Wrap(err, "inserting class")
}

// UpdateClass replaces the configuration of an existing class.
func (m *Manager) UpdateClass(info model.ClassInfo) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	info.ShortName = strings.ToUpper(info.ShortName)
	exists, err := m.classExists(info.ShortName)
	if err != nil {
		return err
	}
	if !exists {
		return errors.Wrap(ErrUnknownClass, info.ShortName)
	}

	_, err = m.db.Exec(buildUpdateClassCommand(),
		info.ClassID, info.LongName, info.IndexValue,
		groupIDValue(info), nullable(info.GroupShortName), nullable(info.GroupLongName),
		info.ShortName)
	return errors.Wrap(err, "updating class")
}

func (m *Manager) DeleteClass(shortName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	shortName = strings.ToUpper(shortName)
	exists, err := m.classExists(shortName)
	if err != nil {
		return err
	}
	if !exists {
		return errors.Wrap(ErrUnknownClass, shortName)
	}

	_, err = m.db.Exec(buildDeleteClassCommand(), shortName)
	return errors.Wrap(err, "deleting class")
}

// ListClasses returns the full class configuration keyed by uppercased
// short name, ready to hand to the results parser.
func (m *Manager) ListClasses() (model.ClassConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	query, read := buildSelectClassesCommand()
	rows, err := m.db.Query(query)
	if err != nil {
		return nil, errors.Wrap(err, "listing classes")
	}
	return read(rows)
}

func (m *Manager) classExists(shortName string) (bool, error) {
	var count int
	err := m.db.QueryRow(buildCountClassCommand(), shortName).Scan(&count)
	if err != nil {
		return false, errors.Wrap(err, "checking class")
	}
	return count > 0, nil
}

func groupIDValue(info model.ClassInfo) interface{} {
	if info.ClassGroupID == nil {
		return nil
	}
	return *info.ClassGroupID
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
