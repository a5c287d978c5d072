package romkan

import (
	"fmt"
	"sort"

	"github.com/npillmayer/romkan/dat"
)

type datBuildNode struct {
	state    uint32
	id       int // syllable ID + 1, 0 for inner nodes
	children map[uint16]*datBuildNode
}

type datBackend struct {
	frozen   bool
	root     *datBuildNode
	compiled *dat.DAT
}

func newDATBackend() *datBackend {
	return &datBackend{
		root: &datBuildNode{children: make(map[uint16]*datBuildNode)},
		compiled: &dat.DAT{
			Root: 1,
		},
	}
}

// Insert adds key with syllable id. It fails for frozen backends, for keys
// containing non-ASCII bytes and for keys already present.
func (db *datBackend) Insert(key string, id int) bool {
	if db.frozen || len(key) == 0 || id < 0 {
		return false
	}
	n := db.root
	for i := 0; i < len(key); i++ {
		c := db.compiled.Alphabet.Add(key[i])
		if c == 0 {
			return false
		}
		child := n.children[c]
		if child == nil {
			child = &datBuildNode{children: make(map[uint16]*datBuildNode)}
			n.children[c] = child
		}
		n = child
	}
	if n.id != 0 {
		return false
	}
	n.id = id + 1
	return true
}

func (db *datBackend) Lookup(key string) (int, bool, bool) {
	if !db.frozen {
		n := db.root
		for i := 0; i < len(key) && n != nil; i++ {
			n = n.children[db.compiled.Alphabet.Dense(key[i])]
		}
		if n == nil {
			return 0, false, false
		}
		return n.id - 1, n.id != 0, len(n.children) > 0
	}
	state := db.compiled.Walk(key)
	if state == 0 {
		return 0, false, false
	}
	id, found := db.compiled.Terminal(state)
	return id, found, db.compiled.HasChildren(state)
}

// Freeze lays out the build trie breadth-first into the double array.
func (db *datBackend) Freeze() {
	if db.frozen {
		return
	}
	d := db.compiled
	d.Sigma = d.Alphabet.Size()
	d.Base = make([]int32, int(d.Root)+1)
	d.Check = make([]int32, int(d.Root)+1)
	d.Value = make([]int32, int(d.Root)+1)
	db.root.state = d.Root
	queue := []*datBuildNode{db.root}
	for q := 0; q < len(queue); q++ {
		n := queue[q]
		d.Value[n.state] = int32(n.id)
		if len(n.children) == 0 {
			continue
		}
		labels := sortedLabels(n.children)
		base := findDATBase(d.Check, d.Root, labels)
		ensureDATIndex(d, base+int(labels[len(labels)-1]))
		d.Base[n.state] = int32(base)
		for _, label := range labels {
			t := base + int(label)
			child := n.children[label]
			child.state = uint32(t)
			d.Check[t] = int32(n.state)
			queue = append(queue, child)
		}
	}
	db.root = nil
	db.frozen = true
}

func sortedLabels(children map[uint16]*datBuildNode) []uint16 {
	labels := make([]uint16, 0, len(children))
	for label := range children {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return labels[i] < labels[j]
	})
	return labels
}

// findDATBase finds the smallest base for which all target slots are free.
// The root slot counts as occupied although nothing checks into it.
func findDATBase(check []int32, root uint32, labels []uint16) int {
	for base := 1; ; base++ {
		ok := true
		for _, label := range labels {
			t := base + int(label)
			if t == int(root) || (t < len(check) && check[t] != 0) {
				ok = false
				break
			}
		}
		if ok {
			return base
		}
	}
}

func ensureDATIndex(d *dat.DAT, idx int) {
	if idx < len(d.Base) {
		return
	}
	grow := idx + 1 - len(d.Base)
	d.Base = append(d.Base, make([]int32, grow)...)
	d.Check = append(d.Check, make([]int32, grow)...)
	d.Value = append(d.Value, make([]int32, grow)...)
}

func (db *datBackend) String() string {
	return fmt.Sprintf("DAT(states=%d,sigma=%d,frozen=%v)", db.compiled.NStates(), db.compiled.Sigma, db.frozen)
}

func (db *datBackend) Stats() keyIndexStats {
	stats := keyIndexStats{
		Backend:    "dat",
		TotalSlots: db.compiled.NStates(),
		MaxStateID: int(db.compiled.Root),
	}
	if stats.TotalSlots == 0 {
		return stats
	}
	used := 0
	maxID := int(db.compiled.Root)
	for i := range db.compiled.Check {
		if i == int(db.compiled.Root) || db.compiled.Check[i] != 0 {
			used++
			if i > maxID {
				maxID = i
			}
		}
	}
	stats.UsedSlots = used
	stats.MaxStateID = maxID
	return stats
}
