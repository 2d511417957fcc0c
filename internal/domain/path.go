package domain

import "fmt"

// ray walks footprints one unit step at a time from a start center toward a
// destination, at most budget steps.
type ray struct {
	cur    Footprint
	dir    Direction
	dest   Coord
	budget int
}

func newRay(start Footprint, dir Direction, dest Coord) *ray {
	dr := abs(dest.Row - start.Center().Row)
	dc := abs(dest.Col - start.Center().Col)
	budget := dr
	if dc > budget {
		budget = dc
	}
	return &ray{cur: start, dir: dir, dest: dest, budget: budget}
}

// Next advances one step and returns the new footprint. ok is false once the
// budget is spent.
func (r *ray) Next() (f Footprint, ok bool) {
	if r.budget == 0 {
		return Footprint{}, false
	}
	r.budget--
	r.cur = r.cur.Step(r.dir)
	return r.cur, true
}

// Arrived reports whether the last footprint returned by Next sits on the destination.
func (r *ray) Arrived() bool { return r.cur.Center() == r.dest }

// walkPath checks every intermediate footprint between start and dest for
// stones on its leading edge. The destination footprint must be on the grid
// but is not checked for stones; whatever it covers is overwritten.
func walkPath(v View, start Footprint, dir Direction, dest Coord) error {
	edge := leadingEdge[dir]
	r := newRay(start, dir, dest)
	for {
		f, ok := r.Next()
		if !ok {
			return fmt.Errorf("%w: %v never reaches %v", ErrInvalidDirection, dir, dest)
		}
		if !f.InBounds() {
			return fmt.Errorf("%w: footprint at %v", ErrOutOfBounds, f.Center())
		}
		if r.Arrived() {
			return nil
		}
		for _, idx := range edge {
			cell, err := v.At(f[idx])
			if err != nil {
				return err
			}
			if cell != Empty {
				return fmt.Errorf("%w at %v", ErrPathObstructed, f[idx])
			}
		}
	}
}
