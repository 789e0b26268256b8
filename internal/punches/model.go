package punches

import (
	"database/sql"
	"time"

	"ponto-backend/internal/report"
)

// DB row, scan target. PunchedAt is nullable on scan so one unreadable
// timestamp skips the row instead of failing the whole list.
type punchRow struct {
	PunchID   int64
	AccountID int64
	PunchedAt sql.NullTime
	Kind      string
	ProofURL  *string
}

// Punch is the one canonical shape the rest of the code sees; wire and DB
// variants are normalized into it here and nowhere else.
type Punch struct {
	PunchID   int64
	AccountID int64
	PunchedAt time.Time // wall clock, zone-naive (carried as UTC labels)
	Kind      string
	ProofURL  *string
}

func (r punchRow) toModel() (Punch, bool) {
	if !r.PunchedAt.Valid {
		return Punch{}, false
	}
	return Punch{
		PunchID:   r.PunchID,
		AccountID: r.AccountID,
		PunchedAt: r.PunchedAt.Time,
		Kind:      r.Kind,
		ProofURL:  r.ProofURL,
	}, true
}

func (p Punch) toDTO() PunchResponse {
	return PunchResponse{
		PunchID:   p.PunchID,
		PunchedAt: p.PunchedAt.Format(TimestampLayout),
		Kind:      p.Kind,
		ProofURL:  p.ProofURL,
	}
}

func (p Punch) toReport() report.Punch {
	return report.Punch{
		ID:       p.PunchID,
		At:       p.PunchedAt,
		Kind:     report.Kind(p.Kind),
		ProofURL: p.ProofURL,
	}
}
