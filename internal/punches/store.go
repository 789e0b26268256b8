package punches

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"log"
	"strings"
	"time"

	"ponto-backend/internal/report"
)

type DBTX interface {
	ExecContext(ctx context.Context, q string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, q string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, q string, args ...any) *sql.Row
}

type Store struct{ db DBTX }

func NewStore(db DBTX) *Store { return &Store{db: db} }

const dbTimeLayout = "2006-01-02 15:04:05.999"

const selectColumns = `punch_id, account_id, punched_at, kind, proof_url`

func (s *Store) Insert(ctx context.Context, p Punch) (int64, error) {
	const q = `
	INSERT INTO punches (account_id, punched_at, kind, proof_url)
	VALUES (?, ?, ?, ?)`
	res, err := s.db.ExecContext(ctx, q,
		p.AccountID, p.PunchedAt.Format(dbTimeLayout), p.Kind, p.ProofURL)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) GetByID(ctx context.Context, id int64) (*Punch, error) {
	row := s.db.QueryRowContext(ctx, `
	SELECT `+selectColumns+`
	FROM punches
	WHERE punch_id = ?
	LIMIT 1`, id)

	var r punchRow
	err := row.Scan(&r.PunchID, &r.AccountID, &r.PunchedAt, &r.Kind, &r.ProofURL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p, ok := r.toModel()
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// ListByOwner returns the account's punches newest first, optionally
// restricted to a period window (closed interval, SQL-side).
func (s *Store) ListByOwner(ctx context.Context, accountID int64, period *report.Period) ([]Punch, error) {
	var (
		buf  bytes.Buffer
		args []any
	)
	buf.WriteString(`
	SELECT ` + selectColumns + `
	FROM punches
	WHERE account_id = ?`)
	args = append(args, accountID)

	if period != nil {
		buf.WriteString(" AND punched_at BETWEEN ? AND ?")
		args = append(args, period.From.Format(dbTimeLayout), period.To.Format(dbTimeLayout))
	}
	buf.WriteString(" ORDER BY punched_at DESC, punch_id DESC")

	rows, err := s.db.QueryContext(ctx, buf.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Punch
	for rows.Next() {
		var r punchRow
		if err := rows.Scan(&r.PunchID, &r.AccountID, &r.PunchedAt, &r.Kind, &r.ProofURL); err != nil {
			return nil, err
		}
		p, ok := r.toModel()
		if !ok {
			// a bad row costs one record, not the whole report
			log.Printf("[WARN] punches: skipping row %d with unreadable timestamp", r.PunchID)
			continue
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type UpdateFields struct {
	PunchedAt  *time.Time
	Kind       *string
	ProofURL   *string
	ClearProof bool
}

// Update builds SET dynamically from the fields that are present. Rows are
// matched by id and owner so a foreign id looks like not-found.
func (s *Store) Update(ctx context.Context, id, accountID int64, f UpdateFields) (int64, error) {
	var (
		sets []string
		args []any
	)
	if f.PunchedAt != nil {
		sets = append(sets, "punched_at = ?")
		args = append(args, f.PunchedAt.Format(dbTimeLayout))
	}
	if f.Kind != nil {
		sets = append(sets, "kind = ?")
		args = append(args, *f.Kind)
	}
	if f.ClearProof {
		sets = append(sets, "proof_url = NULL")
	} else if f.ProofURL != nil {
		sets = append(sets, "proof_url = ?")
		args = append(args, *f.ProofURL)
	}
	if len(sets) == 0 {
		return 0, nil
	}

	q := "UPDATE punches SET " + strings.Join(sets, ", ") + " WHERE punch_id = ? AND account_id = ?"
	args = append(args, id, accountID)

	res, err := s.db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Store) Delete(ctx context.Context, id, accountID int64) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM punches WHERE punch_id = ? AND account_id = ?`, id, accountID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
