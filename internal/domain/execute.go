package domain

// apply relocates the start footprint's contents onto the destination. The
// start is read in full before anything is cleared, so overlapping footprints
// keep their stones. Both footprints were bounds-checked by CheckMove.
func (b *Board) apply(m Move) {
	var snapshot [FootprintSize]Cell
	for i, c := range m.From {
		snapshot[i] = b[c.Row][c.Col]
	}
	for _, c := range m.From {
		b[c.Row][c.Col] = Empty
	}
	for i, c := range m.To {
		b[c.Row][c.Col] = snapshot[i]
	}
}
