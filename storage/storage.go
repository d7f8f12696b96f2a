package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"nyiyui.ca/flight-delay/form"
	"nyiyui.ca/flight-delay/predict"
)

// ErrNotFound is returned by PredictionGet for an unknown id.
var ErrNotFound = errors.New("prediction not found")

type Storage struct {
	DB *sqlx.DB
}

func New(db *sqlx.DB) *Storage {
	return &Storage{DB: db}
}

// Prediction is one successful prediction as it was requested and answered.
type Prediction struct {
	ID         int64     `db:"id" json:"id"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	DateStr    string    `db:"date_str" json:"date_str"`
	DepHHMM    string    `db:"dep_hhmm" json:"dep_hhmm"`
	CrsArrHHMM string    `db:"crs_arr_hhmm" json:"crs_arr_hhmm"`
	Origin     string    `db:"origin" json:"origin"`
	Dest       string    `db:"dest" json:"dest"`
	Carrier    string    `db:"carrier" json:"carrier"`
	// DelayMin is nil when the service answered with something other than a number.
	DelayMin    *float64 `db:"delay_min" json:"delay_min"`
	ArrivalHHMM string   `db:"arrival_hhmm" json:"arrival_hhmm"`
}

func newPrediction(p form.Payload, r *predict.Result, now time.Time) Prediction {
	pr := Prediction{
		CreatedAt:  now.UTC(),
		DateStr:    p.DateStr,
		DepHHMM:    p.DepHHMM,
		CrsArrHHMM: p.CrsArrHHMM,
		Origin:     p.Origin,
		Dest:       p.Dest,
		Carrier:    p.Carrier,
	}
	if r != nil {
		if d, ok := r.DelayMinutes(); ok {
			pr.DelayMin = &d
		}
		pr.ArrivalHHMM = r.Arrival
	}
	return pr
}

// Payload returns the request that produced pr.
func (pr Prediction) Payload() form.Payload {
	return form.Payload{
		DateStr:    pr.DateStr,
		DepHHMM:    pr.DepHHMM,
		CrsArrHHMM: pr.CrsArrHHMM,
		Origin:     pr.Origin,
		Dest:       pr.Dest,
		Carrier:    pr.Carrier,
	}
}

func (s *Storage) PredictionAdd(ctx context.Context, p form.Payload, r *predict.Result) (int64, error) {
	pr := newPrediction(p, r, time.Now())
	res, err := s.DB.NamedExecContext(ctx, `INSERT INTO predictions
		(created_at, date_str, dep_hhmm, crs_arr_hhmm, origin, dest, carrier, delay_min, arrival_hhmm)
		VALUES (:created_at, :date_str, :dep_hhmm, :crs_arr_hhmm, :origin, :dest, :carrier, :delay_min, :arrival_hhmm)`, pr)
	if err != nil {
		return 0, fmt.Errorf("insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// PredictionList returns the newest predictions first. A limit of zero or less means
// no limit.
func (s *Storage) PredictionList(ctx context.Context, limit int) ([]Prediction, error) {
	if limit <= 0 {
		limit = -1
	}
	prs := []Prediction{}
	err := s.DB.SelectContext(ctx, &prs, "SELECT * FROM predictions ORDER BY created_at DESC, id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}
	return prs, nil
}

func (s *Storage) PredictionGet(ctx context.Context, id int64) (*Prediction, error) {
	var pr Prediction
	err := s.DB.GetContext(ctx, &pr, "SELECT * FROM predictions WHERE id = ?", id)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("get: %w", err)
	}
	return &pr, nil
}
