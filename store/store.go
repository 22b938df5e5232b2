// Package store keeps checkpoints of neuro.Networks in a SQLite database, so that long training
// runs can be resumed and compared.
package store

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/sharnoff/neuro"
)

// ErrNoCheckpoint is returned when a requested checkpoint does not exist
var ErrNoCheckpoint = errors.New("No such checkpoint")

// Store is a connection to a checkpoint database
type Store struct {
	db *sql.DB
}

// Checkpoint describes a single saved Network. Networks themselves are only decoded on request,
// with Get or Latest.
type Checkpoint struct {
	ID        int64
	Name      string
	Shape     string
	Iteration int
	ErrorTerm float64
	CreatedAt time.Time
}

// Open connects to the database at the given path, creating it (and its directory) if it does not
// exist yet.
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrapf(err, "Can't open store, couldn't create directory %s", dir)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't open store at %s", dbPath)
	}

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS checkpoints (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		shape TEXT NOT NULL,
		iteration INTEGER NOT NULL,
		error_term FLOAT NOT NULL,
		network TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_checkpoints_name ON checkpoints(name);
	`

	_, err := s.db.Exec(schema)
	return errors.Wrapf(err, "Can't create checkpoint tables")
}

// Put saves the current state of the Network under the given name, returning the id of the new
// checkpoint. Earlier checkpoints with the same name are kept.
func (s *Store) Put(name string, net *neuro.Network) (int64, error) {
	if net == nil {
		return 0, errors.Errorf("Can't save checkpoint, network is nil")
	} else if name == "" {
		return 0, errors.Errorf(`Can't save checkpoint, name cannot be ""`)
	}

	data, err := net.Serialize(neuro.FormatJSON)
	if err != nil {
		return 0, errors.Wrapf(err, "Can't save checkpoint %q", name)
	}

	result, err := s.db.Exec(
		"INSERT INTO checkpoints (name, shape, iteration, error_term, network) VALUES (?, ?, ?, ?, ?)",
		name, net.String(), net.Iter(), net.LastErrorTerm(), data,
	)
	if err != nil {
		return 0, errors.Wrapf(err, "Can't save checkpoint %q", name)
	}

	return result.LastInsertId()
}

func (s *Store) decode(query string, args ...interface{}) (*neuro.Network, error) {
	var data string
	var iter int

	err := s.db.QueryRow(query, args...).Scan(&data, &iter)
	if err == sql.ErrNoRows {
		return nil, ErrNoCheckpoint
	} else if err != nil {
		return nil, errors.Wrapf(err, "Can't read checkpoint")
	}

	net, err := neuro.FromSerialization(data)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't decode checkpoint")
	}

	if err = net.ResetIter(iter); err != nil {
		return nil, err
	}

	return net, nil
}

// Get restores the Network saved with the given checkpoint id
func (s *Store) Get(id int64) (*neuro.Network, error) {
	return s.decode("SELECT network, iteration FROM checkpoints WHERE id = ?", id)
}

// Latest restores the most recent Network saved under the given name
func (s *Store) Latest(name string) (*neuro.Network, error) {
	return s.decode("SELECT network, iteration FROM checkpoints WHERE name = ? ORDER BY id DESC LIMIT 1", name)
}

// List returns every checkpoint saved under the given name, oldest first
func (s *Store) List(name string) ([]Checkpoint, error) {
	rows, err := s.db.Query(`
		SELECT id, name, shape, iteration, error_term, created_at
		FROM checkpoints
		WHERE name = ?
		ORDER BY id ASC
	`, name)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't list checkpoints for %q", name)
	}
	defer rows.Close()

	var cps []Checkpoint
	for rows.Next() {
		var c Checkpoint
		if err := rows.Scan(&c.ID, &c.Name, &c.Shape, &c.Iteration, &c.ErrorTerm, &c.CreatedAt); err != nil {
			return nil, errors.Wrapf(err, "Can't list checkpoints for %q", name)
		}
		cps = append(cps, c)
	}

	return cps, rows.Err()
}

// Delete removes every checkpoint saved under the given name, returning how many there were
func (s *Store) Delete(name string) (int64, error) {
	result, err := s.db.Exec("DELETE FROM checkpoints WHERE name = ?", name)
	if err != nil {
		return 0, errors.Wrapf(err, "Can't delete checkpoints for %q", name)
	}

	return result.RowsAffected()
}

// Close closes the connection to the database
func (s *Store) Close() error {
	return s.db.Close()
}
