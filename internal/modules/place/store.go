// README: Place store backed by PostgreSQL.
package place

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"explore/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Place, error) {
	row := s.db.QueryRow(ctx, `
        SELECT id, name, region, lat, lng
        FROM places
        WHERE id = $1`, string(id),
	)
	var p Place
	err := row.Scan(&p.ID, &p.Name, &p.Region, &p.Location.Lat, &p.Location.Lng)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetMany returns the places for ids in the order given, repeating places
// whose ID repeats. IDs with no row are returned in missing.
func (s *Store) GetMany(ctx context.Context, ids []types.ID) (places []Place, missing []types.ID, err error) {
	if len(ids) == 0 {
		return nil, nil, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = string(id)
	}

	rows, err := s.db.Query(ctx, `
        SELECT id, name, region, lat, lng
        FROM places
        WHERE id = ANY($1)`, keys,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("query places: %w", err)
	}
	defer rows.Close()

	found := make(map[types.ID]Place, len(ids))
	for rows.Next() {
		var p Place
		if err := rows.Scan(&p.ID, &p.Name, &p.Region, &p.Location.Lat, &p.Location.Lng); err != nil {
			return nil, nil, fmt.Errorf("scan place: %w", err)
		}
		found[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("read places: %w", err)
	}

	places, missing = inRequestOrder(ids, found)
	return places, missing, nil
}

func inRequestOrder(ids []types.ID, found map[types.ID]Place) ([]Place, []types.ID) {
	places := make([]Place, 0, len(ids))
	var missing []types.ID
	for _, id := range ids {
		p, ok := found[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		places = append(places, p)
	}
	return places, missing
}
