package storage

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/audit-sampler/internal/config"
	"github.com/carson-networks/audit-sampler/internal/storage/analysisrun"
	"github.com/carson-networks/audit-sampler/internal/storage/ledgerentry"
)

type Storage struct {
	DB      *sql.DB
	Entries ledgerentry.IEntriesTable
	Runs    analysisrun.IRunsTable
}

func NewStorage(env *config.Config) *Storage {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}

	exec := bob.NewDB(db)
	return &Storage{
		DB:      db,
		Entries: ledgerentry.NewReader(exec),
		Runs:    analysisrun.NewReader(exec),
	}
}

// Write opens a transaction and returns a Writer scoped to it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := bob.NewDB(s.DB).Begin(ctx)
	if err != nil {
		return nil, err
	}
	writer := NewWriter(tx)
	return &writer, nil
}
