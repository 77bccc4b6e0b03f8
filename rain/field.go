package rain

import (
	"fmt"
	"log"
)

// Field owns one column per glyph-width slot across the surface.
type Field struct {
	cfg           Config
	random        Random
	width, height int
	columns       []*Column
}

// NewField creates an empty field. Call Resize to lay out columns.
func NewField(cfg Config, random Random) (*Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if random == nil {
		return nil, &ConfigError{Field: "random", Reason: "must not be nil"}
	}
	return &Field{cfg: cfg, random: random}, nil
}

// Resize lays the field out for a surface of the given size. Columns that
// still fit keep their state, columns past the new width are dropped, and
// new slots get fresh columns entering from the randomized entry row.
func (f *Field) Resize(width, height int) error {
	width, height = max(width, 0), max(height, 0)
	f.width, f.height = width, height

	n := width / f.cfg.GlyphWidth
	if n <= len(f.columns) {
		clear(f.columns[n:])
		f.columns = f.columns[:n]
	}
	for i := len(f.columns); i < n; i++ {
		c, err := newColumn(i, &f.cfg, f.random)
		if err != nil {
			return fmt.Errorf("failed to create column %d: %w", i, err)
		}
		f.columns = append(f.columns, c)
	}
	if f.cfg.Debug {
		log.Printf("Resized field to %dx%d with %d columns", width, height, len(f.columns))
	}
	return nil
}

// Update advances every column by one tick. Columns are independent, so
// the order they are visited in does not matter.
func (f *Field) Update() {
	for _, c := range f.columns {
		c.update(f.height, &f.cfg)
	}
}

// Len returns the number of columns.
func (f *Field) Len() int { return len(f.columns) }

// Size returns the surface size the field is laid out for.
func (f *Field) Size() (width, height int) { return f.width, f.height }

// Columns returns the columns in slot order. Callers must not modify them.
func (f *Field) Columns() []*Column { return f.columns }

// State returns a snapshot of every column in slot order.
func (f *Field) State() []ColumnState {
	states := make([]ColumnState, len(f.columns))
	for i, c := range f.columns {
		states[i] = c.State()
	}
	return states
}
