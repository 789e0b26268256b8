package punches

import (
	"bytes"
	"encoding/json"

	"ponto-backend/internal/report"
)

const (
	// TimestampLayout is the local-naive wire form for punched_at. No zone
	// designator on purpose: the wall clock the user saw must round-trip.
	TimestampLayout = "2006-01-02T15:04:05"

	KindEntry = "entry"
	KindExit  = "exit"
)

type CreatePunchRequest struct {
	PunchedAt string  `json:"punched_at" binding:"required"`
	Kind      string  `json:"kind" binding:"required"`
	ProofURL  *string `json:"proof_url,omitempty"`
}

// OptionalString distinguishes an absent JSON field from an explicit null,
// so PATCH {"proof_url": null} clears the proof while omitting the field
// leaves it alone.
type OptionalString struct {
	Set   bool
	Value *string
}

func (o *OptionalString) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(b, []byte("null")) {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

type UpdatePunchRequest struct {
	PunchedAt *string        `json:"punched_at,omitempty"`
	Kind      *string        `json:"kind,omitempty"`
	ProofURL  OptionalString `json:"proof_url"`
}

type PunchResponse struct {
	PunchID   int64   `json:"id"`
	PunchedAt string  `json:"punched_at"` // TimestampLayout
	Kind      string  `json:"kind"`
	ProofURL  *string `json:"proof_url,omitempty"`
}

type TodayEntry struct {
	PunchID  int64   `json:"id"`
	Time     string  `json:"time"` // HH:MM
	Kind     string  `json:"kind"`
	ProofURL *string `json:"proof_url,omitempty"`
}

type TodayReportResponse struct {
	Date          string         `json:"date"` // YYYY-MM-DD
	Entries       []TodayEntry   `json:"entries"`
	Summary       report.Summary `json:"summary"`
	WorkedLabel   string         `json:"worked_label"`   // "07h 30m"
	OvertimeLabel string         `json:"overtime_label"`
}

type ResolveRequest struct {
	Month int    `json:"month" binding:"required"`
	Year  int    `json:"year" binding:"required"`
	Key   string `json:"key" binding:"required"`
}

type ResolveResponse struct {
	PunchID int64 `json:"id"`
}
