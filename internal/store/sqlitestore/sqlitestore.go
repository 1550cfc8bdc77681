// Package sqlitestore keeps registry snapshots in a SQLite database.
package sqlitestore

import (
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/idilsaglam/tasks/internal/log"
	"github.com/idilsaglam/tasks/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	position INTEGER PRIMARY KEY,
	name     TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS tasks (
	user_name TEXT NOT NULL REFERENCES users(name),
	position  INTEGER NOT NULL,
	title     TEXT NOT NULL,
	completed INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (user_name, position)
);`

type Store struct {
	db   *sql.DB
	path string
}

// Open creates the database file and schema if they do not exist.
func Open(path string) (*Store, error) {
	log.Debug(log.CatStore, "Opening database", "path", path)
	db, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		log.ErrorErr(log.CatStore, "Failed to open database", err, "path", path)
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		log.ErrorErr(log.CatStore, "Failed to apply schema", err, "path", path)
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// rowScanner is the part of *sql.Rows the loaders read from.
type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func (s *Store) Load() (store.Snapshot, error) {
	rows, err := s.db.Query(`SELECT name FROM users ORDER BY position`)
	if err != nil {
		return store.Snapshot{}, fmt.Errorf("query users: %w", err)
	}
	snap, index, err := scanUsers(rows)
	_ = rows.Close()
	if err != nil {
		return store.Snapshot{}, err
	}

	rows, err = s.db.Query(`SELECT user_name, title, completed FROM tasks ORDER BY user_name, position`)
	if err != nil {
		return store.Snapshot{}, fmt.Errorf("query tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()
	if err := scanTasks(rows, &snap, index); err != nil {
		return store.Snapshot{}, err
	}
	log.Debug(log.CatStore, "Loaded snapshot", "path", s.path, "users", len(snap.Users))
	return snap, nil
}

// scanUsers reads user names in stored order and indexes them by name.
func scanUsers(rows rowScanner) (store.Snapshot, map[string]int, error) {
	var snap store.Snapshot
	index := make(map[string]int)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return store.Snapshot{}, nil, fmt.Errorf("scan user: %w", err)
		}
		index[name] = len(snap.Users)
		snap.Users = append(snap.Users, store.UserRecord{Name: name, Tasks: []store.TaskRecord{}})
	}
	if err := rows.Err(); err != nil {
		return store.Snapshot{}, nil, fmt.Errorf("read users: %w", err)
	}
	return snap, index, nil
}

func scanTasks(rows rowScanner, snap *store.Snapshot, index map[string]int) error {
	for rows.Next() {
		var (
			user string
			rec  store.TaskRecord
		)
		if err := rows.Scan(&user, &rec.Title, &rec.Completed); err != nil {
			return fmt.Errorf("scan task: %w", err)
		}
		i, ok := index[user]
		if !ok {
			return fmt.Errorf("task %q references unknown user %q", rec.Title, user)
		}
		snap.Users[i].Tasks = append(snap.Users[i].Tasks, rec)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("read tasks: %w", err)
	}
	return nil
}

// Save replaces the stored snapshot in a single transaction.
func (s *Store) Save(snap store.Snapshot) (err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Exec(`DELETE FROM tasks`); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}
	if _, err = tx.Exec(`DELETE FROM users`); err != nil {
		return fmt.Errorf("clear users: %w", err)
	}
	for i, u := range snap.Users {
		if _, err = tx.Exec(`INSERT INTO users (position, name) VALUES (?, ?)`, i, u.Name); err != nil {
			return fmt.Errorf("insert user %q: %w", u.Name, err)
		}
		for j, t := range u.Tasks {
			if _, err = tx.Exec(
				`INSERT INTO tasks (user_name, position, title, completed) VALUES (?, ?, ?, ?)`,
				u.Name, j, t.Title, t.Completed,
			); err != nil {
				return fmt.Errorf("insert task %q: %w", t.Title, err)
			}
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	log.Debug(log.CatStore, "Saved snapshot", "path", s.path, "users", len(snap.Users))
	return nil
}
