// Package trie implements the plain, uncompressed prefix tree spellkit's
// dictionary backends use for exact lookup, prefix queries, and set
// operations. It deliberately does not compress shared path segments into
// a DAFSA; that trade-off is named explicitly in spec as a non-goal, and
// a second, independent structure (pkg/suggest's accelerator, built on
// go-patricia) exists for compressed candidate narrowing instead.
package trie

// node is one character position in the tree. children is kept as a
// parallel (key, child) slice instead of a map so that traversal order
// matches insertion order — that ordering is part of the observable
// contract callers may depend on, and Go map iteration order is not
// stable across runs.
type node struct {
	char     rune
	terminal bool
	payload  any
	keys     []rune
	children []*node
	index    map[rune]int
}

func newNode(char rune) *node {
	return &node{char: char, index: make(map[rune]int)}
}

func (n *node) child(c rune) *node {
	if i, ok := n.index[c]; ok {
		return n.children[i]
	}
	return nil
}

func (n *node) childOrCreate(c rune) *node {
	if existing := n.child(c); existing != nil {
		return existing
	}
	child := newNode(c)
	n.index[c] = len(n.children)
	n.keys = append(n.keys, c)
	n.children = append(n.children, child)
	return child
}

// Trie owns the root node and a cached word count.
type Trie struct {
	root   *node
	count  int
	frozen bool
}

// New returns an empty trie.
func New() *Trie {
	return &Trie{root: newNode(0)}
}

// Insert creates any missing nodes along word's rune path, marks the
// final node terminal, and records payload there. Re-inserting a word
// that is already terminal overwrites its payload but never changes the
// word count. Insert on a frozen trie is a no-op returning the trie
// unchanged, since freezing marks the end of build per the concurrency
// model: no mutation once a dictionary owns the trie.
func (t *Trie) Insert(word string, payload any) *Trie {
	if t.frozen {
		return t
	}
	cur := t.root
	for _, r := range word {
		cur = cur.childOrCreate(r)
	}
	if !cur.terminal {
		cur.terminal = true
		t.count++
	}
	cur.payload = payload
	return t
}

// Delete unmarks word's terminal node, if present, and reports whether
// it was removed. It does not prune now-dangling interior nodes; they
// stop being reachable as complete words, but HasPrefix still reports
// true along the removed word's path, and Suggestions can match into
// that path. Delete on a frozen trie is a no-op returning false.
func (t *Trie) Delete(word string) bool {
	if t.frozen {
		return false
	}
	n, ok := t.walk(word)
	if !ok || !n.terminal {
		return false
	}
	n.terminal = false
	n.payload = nil
	t.count--
	return true
}

// Freeze marks the trie read-only. Subsequent Insert/Merge calls are
// no-ops.
func (t *Trie) Freeze() {
	t.frozen = true
}

// Len returns the number of distinct terminal words inserted.
func (t *Trie) Len() int {
	return t.count
}

func (t *Trie) walk(word string) (*node, bool) {
	cur := t.root
	for _, r := range word {
		cur = cur.child(r)
		if cur == nil {
			return nil, false
		}
	}
	return cur, true
}

// Contains reports whether word was inserted and its terminal node is
// still marked terminal.
func (t *Trie) Contains(word string) bool {
	n, ok := t.walk(word)
	return ok && n.terminal
}

// HasPrefix reports whether any inserted word begins with prefix
// (including prefix itself, whether or not prefix is itself a word).
// A word removed by Delete still counts, since its nodes are not pruned.
func (t *Trie) HasPrefix(prefix string) bool {
	_, ok := t.walk(prefix)
	return ok
}

// Payload returns the payload stored at word's terminal node, if any.
func (t *Trie) Payload(word string) (any, bool) {
	n, ok := t.walk(word)
	if !ok || !n.terminal {
		return nil, false
	}
	return n.payload, true
}

// WordsWithPrefix returns every inserted word beginning with prefix, in
// depth-first order determined by each node's child insertion order.
func (t *Trie) WordsWithPrefix(prefix string) []string {
	start, ok := t.walk(prefix)
	if !ok {
		return nil
	}
	var out []string
	collect(start, prefix, &out)
	return out
}

func collect(n *node, prefix string, out *[]string) {
	if n.terminal {
		*out = append(*out, prefix)
	}
	for i, child := range n.children {
		collect(child, prefix+string(n.keys[i]), out)
	}
}

// Suggestions finds the longest path through the trie matching a prefix
// of word, then enumerates completions from that node, stopping once
// maxResults have been collected. If no rune of word matches past the
// root, completions are drawn from the root (every word in the trie).
func (t *Trie) Suggestions(word string, maxResults int) []string {
	cur := t.root
	matched := ""
	for _, r := range word {
		next := cur.child(r)
		if next == nil {
			break
		}
		cur = next
		matched += string(r)
	}
	var out []string
	collectBounded(cur, matched, maxResults, &out)
	return out
}

func collectBounded(n *node, prefix string, max int, out *[]string) {
	if len(*out) >= max {
		return
	}
	if n.terminal {
		*out = append(*out, prefix)
		if len(*out) >= max {
			return
		}
	}
	for i, child := range n.children {
		collectBounded(child, prefix+string(n.keys[i]), max, out)
		if len(*out) >= max {
			return
		}
	}
}

// Entry is one (word, payload) pair yielded by EachWord.
type Entry struct {
	Word    string
	Payload any
}

// frame is one stack entry of the iterator's explicit DFS.
type frame struct {
	n        *node
	prefix   string
	childIdx int
	yielded  bool
}

// Iterator walks every word in a trie lazily, in child-insertion order.
// It is finite and non-restartable: once exhausted, a new call to
// EachWord is required to walk again.
type Iterator struct {
	stack []*frame
}

// EachWord returns a fresh iterator over every (word, payload) pair.
func (t *Trie) EachWord() *Iterator {
	return &Iterator{stack: []*frame{{n: t.root, prefix: ""}}}
}

// Next returns the next entry in the traversal, or ok=false when the
// iterator is exhausted.
func (it *Iterator) Next() (Entry, bool) {
	for len(it.stack) > 0 {
		top := it.stack[len(it.stack)-1]
		if !top.yielded {
			top.yielded = true
			if top.n.terminal {
				return Entry{Word: top.prefix, Payload: top.n.payload}, true
			}
		}
		if top.childIdx >= len(top.n.children) {
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}
		i := top.childIdx
		top.childIdx++
		child := top.n.children[i]
		it.stack = append(it.stack, &frame{n: child, prefix: top.prefix + string(top.n.keys[i])})
	}
	return Entry{}, false
}

// Merge inserts every word of other into t, carrying over payloads, and
// returns t.
func (t *Trie) Merge(other *Trie) *Trie {
	it := other.EachWord()
	for {
		e, ok := it.Next()
		if !ok {
			break
		}
		t.Insert(e.Word, e.Payload)
	}
	return t
}

// Intersect returns a new trie containing only words present in both t
// and other, by word equality. Payloads are taken from t.
func (t *Trie) Intersect(other *Trie) *Trie {
	out := New()
	it := t.EachWord()
	for {
		e, ok := it.Next()
		if !ok {
			break
		}
		if other.Contains(e.Word) {
			out.Insert(e.Word, e.Payload)
		}
	}
	return out
}

// Union returns a new trie containing every word present in either t or
// other. Where both contain a word, t's payload wins.
func (t *Trie) Union(other *Trie) *Trie {
	out := New()
	out.Merge(other)
	out.Merge(t)
	return out
}
