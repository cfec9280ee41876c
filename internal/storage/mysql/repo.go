package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"hotel_rooms/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertRoom(ctx context.Context, rm domain.Room) error {
	amen := rm.Amenities
	if amen == nil {
		amen = []string{}
	}
	amenJSON, err := json.Marshal(amen)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, upsertRoomSQL,
		rm.ID,
		rm.Slug,
		rm.Name,
		rm.Description,
		rm.LongDescription,
		rm.Rate,
		rm.Currency,
		rm.Guests,
		rm.Beds,
		rm.Sqft,
		rm.Stars,
		rm.Available,
		rm.CheckIn.UTC(),
		rm.CheckOut.UTC(),
		string(amenJSON),
	)
	return err
}

// ListRooms expects a DSN with parseTime=true&loc=UTC.
func (r *Repo) ListRooms(ctx context.Context) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx, listRoomsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Room
	for rows.Next() {
		var rm domain.Room
		var desc, longDesc sql.NullString
		var amenitiesJSON []byte
		if err := rows.Scan(
			&rm.ID,
			&rm.Slug,
			&rm.Name,
			&desc, &longDesc,
			&rm.Rate,
			&rm.Currency,
			&rm.Guests,
			&rm.Beds,
			&rm.Sqft,
			&rm.Stars,
			&rm.Available,
			&rm.CheckIn, &rm.CheckOut,
			&amenitiesJSON,
		); err != nil {
			return nil, err
		}
		rm.Description = desc.String
		rm.LongDescription = longDesc.String
		rm.CheckIn = rm.CheckIn.UTC()
		rm.CheckOut = rm.CheckOut.UTC()
		if len(amenitiesJSON) > 0 {
			if err := json.Unmarshal(amenitiesJSON, &rm.Amenities); err != nil {
				return nil, fmt.Errorf("room %d amenities: %w", rm.ID, err)
			}
		}
		out = append(out, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
