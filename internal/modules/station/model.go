// README: Station registry with multilingual aliases and a precomputed hop-count matrix.
package station

import "fmt"

// Station is one stop of a rail network. Its position in the registry is
// the index into the hop matrix.
type Station struct {
	Zh string
	Pt string
	En string
}

func (s Station) aliases() []string {
	return []string{s.Zh, s.Pt, s.En}
}

// Registry is an ordered station list plus a symmetric hop-count matrix.
type Registry struct {
	stations []Station
	hops     [][]int
}

// NewRegistry validates that hops is square over stations, symmetric, has a
// zero diagonal and no negative entries.
func NewRegistry(stations []Station, hops [][]int) (*Registry, error) {
	n := len(stations)
	if len(hops) != n {
		return nil, fmt.Errorf("hop matrix has %d rows, want %d", len(hops), n)
	}
	for i, row := range hops {
		if len(row) != n {
			return nil, fmt.Errorf("hop matrix row %d has %d columns, want %d", i, len(row), n)
		}
		if row[i] != 0 {
			return nil, fmt.Errorf("hop matrix diagonal at %d is %d", i, row[i])
		}
		for j, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("hop matrix entry (%d,%d) is negative", i, j)
			}
			if hops[j][i] != v {
				return nil, fmt.Errorf("hop matrix not symmetric at (%d,%d)", i, j)
			}
		}
	}
	return &Registry{stations: stations, hops: hops}, nil
}

// MustRegistry is NewRegistry for static tables.
func MustRegistry(stations []Station, hops [][]int) *Registry {
	r, err := NewRegistry(stations, hops)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) Len() int { return len(r.stations) }

// Station returns the entry at index i.
func (r *Registry) Station(i int) Station { return r.stations[i] }

// Hops returns the hop count between two registry indexes.
func (r *Registry) Hops(i, j int) int { return r.hops[i][j] }
