package romkan

// Status tells a caller what a single keystroke did.
type Status int8

const (
	Pending  Status = iota // keystroke is held, waiting for more input
	Resolved               // committed output grew by table syllables
	Invalid                // a character had to be passed through unresolved
	Rejected               // keystroke is not romaji input and has been ignored
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Resolved:
		return "resolved"
	case Invalid:
		return "invalid"
	case Rejected:
		return "rejected"
	}
	return "<unknown>"
}

// Engine transliterates the input of a single typing session.
//
// An engine is not safe for concurrent use; each input field owns one.
// The table may be shared between engines.
type Engine struct {
	table *Table
	raw   []byte
	res   Resolution
}

// NewEngine creates an engine with empty input for table.
func NewEngine(table *Table) *Engine {
	assert(table != nil, "engine needs a syllable table")
	return &Engine{table: table}
}

// IsKey reports whether r is accepted by Append: 'a'…'z' or '-'.
func IsKey(r rune) bool {
	return (r >= 'a' && r <= 'z') || r == '-'
}

// Append adds one typed character and re-resolves the input.
// Characters other than lowercase ASCII letters and the hyphen are not
// romaji input; callers should filter them. They are ignored and reported
// as Rejected.
func (e *Engine) Append(r rune) Status {
	if !IsKey(r) {
		tracer().Debugf("ignoring non-romaji input %q", r)
		return Rejected
	}
	prev := e.res
	e.raw = append(e.raw, byte(r))
	e.res = e.table.Resolve(string(e.raw))
	switch {
	case e.res.Literals > prev.Literals:
		return Invalid
	case len(e.res.Committed) > len(prev.Committed):
		return Resolved
	}
	return Pending
}

// DeleteLast removes the most recently typed character and re-resolves
// the input. It returns false if there is nothing to delete.
func (e *Engine) DeleteLast() bool {
	if len(e.raw) == 0 {
		return false
	}
	e.raw = e.raw[:len(e.raw)-1]
	e.res = e.table.Resolve(string(e.raw))
	return true
}

// Reset discards all input.
func (e *Engine) Reset() {
	e.raw = e.raw[:0]
	e.res = Resolution{}
}

// Output returns the current rendering: committed kana followed by the
// unresolved fragment as typed.
func (e *Engine) Output() string {
	return e.res.Text()
}

// Committed returns the resolved part of the output.
func (e *Engine) Committed() string {
	return e.res.Committed
}

// Pending returns the fragment held back for more input.
func (e *Engine) Pending() string {
	return e.res.Pending
}

// Raw returns everything typed so far.
func (e *Engine) Raw() string {
	return string(e.raw)
}

// Matches reports whether the current output equals target exactly.
func (e *Engine) Matches(target string) bool {
	return e.Output() == target
}

// Table returns the syllable table of this engine.
func (e *Engine) Table() *Table {
	return e.table
}
