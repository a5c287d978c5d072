package romkan

type keyIndexStats struct {
	Backend    string
	UsedSlots  int
	TotalSlots int
	MaxStateID int
}

func (s keyIndexStats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}

// keyIndex is the internal backend abstraction for romaji key storage.
//
// Lookup reports the syllable ID stored for an exact key and whether key
// continues into at least one longer key.
type keyIndex interface {
	Insert(key string, id int) bool
	Freeze()
	Lookup(key string) (id int, found bool, extends bool)
	Stats() keyIndexStats
	String() string
}
