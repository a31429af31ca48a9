package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"cataloguer/internal/domain"
)

const dayFormat = "2006-01-02"

// Create inserts the five business fields of a catalogue and returns the
// number of rows inserted. The id is assigned by the database.
func (d *DB) Create(ctx context.Context, c domain.Catalogue) (int64, error) {
	res, err := d.sql.ExecContext(ctx,
		"INSERT INTO catalogue (catalogue_name, catalogue_description, effective_from, effective_to, status) VALUES ($1, $2, $3, $4, $5)",
		c.Name, c.Description, c.EffectiveFrom, c.EffectiveTo, c.Status,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// GetByID retrieves a catalogue by id, returning nil when no row matches.
func (d *DB) GetByID(ctx context.Context, id int64) (*domain.Catalogue, error) {
	row := d.sql.QueryRowContext(ctx,
		"SELECT catalogue_id, catalogue_name, catalogue_description, effective_from, effective_to, status FROM catalogue WHERE catalogue_id = $1",
		id,
	)

	var (
		c        domain.Catalogue
		from, to time.Time
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &from, &to, &c.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	c.EffectiveFrom = from.Format(dayFormat)
	c.EffectiveTo = to.Format(dayFormat)
	return &c, nil
}

// GetAll returns every catalogue row in storage order.
func (d *DB) GetAll(ctx context.Context) ([]domain.Catalogue, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT catalogue_id, catalogue_name, catalogue_description, effective_from, effective_to, status FROM catalogue")
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.Catalogue, 0)
	for rows.Next() {
		var (
			c        domain.Catalogue
			from, to time.Time
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &from, &to, &c.Status); err != nil {
			return nil, err
		}
		c.EffectiveFrom = from.Format(dayFormat)
		c.EffectiveTo = to.Format(dayFormat)
		out = append(out, c)
	}
	return out, rows.Err()
}

// UpdateByID overwrites all five business fields of the row matching id and
// returns the number of rows affected. A missing id affects zero rows and is
// not an error.
func (d *DB) UpdateByID(ctx context.Context, id int64, c domain.Catalogue) (int64, error) {
	res, err := d.sql.ExecContext(ctx,
		"UPDATE catalogue SET catalogue_name = $1, catalogue_description = $2, effective_from = $3, effective_to = $4, status = $5 WHERE catalogue_id = $6",
		c.Name, c.Description, c.EffectiveFrom, c.EffectiveTo, c.Status, id,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteByID removes the row matching id, reporting whether a row was
// actually deleted.
func (d *DB) DeleteByID(ctx context.Context, id int64) (bool, error) {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM catalogue WHERE catalogue_id = $1", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
