package xlsx

import "fmt"

// StyleIDs are the positions of a style and its components in the tables of
// one repository.
type StyleIDs struct {
	Style        int
	Border       int
	Fill         int
	Font         int
	NumberFormat int
	CellXf       int
}

type componentTable[T comparable] struct {
	ids   map[T]int
	items []T
}

func newComponentTable[T comparable]() componentTable[T] {
	return componentTable[T]{ids: make(map[T]int)}
}

func (t *componentTable[T]) intern(v T) int {
	if id, ok := t.ids[v]; ok {
		return id
	}
	id := len(t.items)
	t.ids[v] = id
	t.items = append(t.items, v)
	return id
}

// StyleRepository collapses equal styles and style components into one
// shared instance each. Ids are handed out in insertion order starting at 0.
// A repository is not safe for concurrent use.
type StyleRepository struct {
	borders       componentTable[Border]
	fills         componentTable[Fill]
	fonts         componentTable[Font]
	numberFormats componentTable[NumberFormat]
	cellXfs       componentTable[CellXf]

	styles  map[Style]*Style
	ordered []*Style
	ids     map[*Style]StyleIDs
}

func NewStyleRepository() *StyleRepository {
	return &StyleRepository{
		borders:       newComponentTable[Border](),
		fills:         newComponentTable[Fill](),
		fonts:         newComponentTable[Font](),
		numberFormats: newComponentTable[NumberFormat](),
		cellXfs:       newComponentTable[CellXf](),
		styles:        make(map[Style]*Style),
		ids:           make(map[*Style]StyleIDs),
	}
}

// newSaveRepository is seeded the way Excel expects styles.xml to start: the
// default style first and the reserved gray125 fill at index 1.
func newSaveRepository() *StyleRepository {
	r := NewStyleRepository()
	r.Add(DefaultStyle())
	r.fills.intern(Fill{Pattern: PatternGray125})
	return r
}

// Add returns the repository's instance of s, interning s and its components
// when no equal style is known yet.
func (r *StyleRepository) Add(s Style) *Style {
	if p, ok := r.styles[s]; ok {
		return p
	}
	p := &s
	r.ids[p] = StyleIDs{
		Style:        len(r.ordered),
		Border:       r.borders.intern(s.Border),
		Fill:         r.fills.intern(s.Fill),
		Font:         r.fonts.intern(s.Font),
		NumberFormat: r.numberFormats.intern(s.NumberFormat),
		CellXf:       r.cellXfs.intern(s.CellXf),
	}
	r.styles[s] = p
	r.ordered = append(r.ordered, p)
	return p
}

// AddComponent interns a single component and returns its id. Components are
// passed by value; anything else is an internal error.
func (r *StyleRepository) AddComponent(c any) (int, error) {
	switch v := c.(type) {
	case Border:
		return r.borders.intern(v), nil
	case Fill:
		return r.fills.intern(v), nil
	case Font:
		return r.fonts.intern(v), nil
	case NumberFormat:
		return r.numberFormats.intern(v), nil
	case CellXf:
		return r.cellXfs.intern(v), nil
	case Style:
		return r.ids[r.Add(v)].Style, nil
	default:
		return 0, fmt.Errorf("%w %T: %w", ErrUnknownComponent, c, ErrStyle)
	}
}

// IDs reports the ids of a style previously returned by Add.
func (r *StyleRepository) IDs(s *Style) (StyleIDs, bool) {
	ids, ok := r.ids[s]
	return ids, ok
}

// Lookup finds the repository's instance of a style equal to s.
func (r *StyleRepository) Lookup(s Style) (*Style, bool) {
	p, ok := r.styles[s]
	return p, ok
}

func (r *StyleRepository) Len() int {
	return len(r.ordered)
}

func (r *StyleRepository) Styles() []*Style {
	return r.ordered
}

func (r *StyleRepository) Borders() []Border {
	return r.borders.items
}

func (r *StyleRepository) Fills() []Fill {
	return r.fills.items
}

func (r *StyleRepository) Fonts() []Font {
	return r.fonts.items
}

func (r *StyleRepository) NumberFormats() []NumberFormat {
	return r.numberFormats.items
}

func (r *StyleRepository) CellXfs() []CellXf {
	return r.cellXfs.items
}
