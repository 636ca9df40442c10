package queue

// Entry is a single image in the browsing queue.
type Entry struct {
	Title string
	Path  string
}

// Queue manages an ordered list of sibling images for directory browsing.
// It is only mutated from Bubbletea's single-threaded Update loop.
type Queue struct {
	entries []Entry
	current int
}

// New creates a Queue from the given entries.
func New(entries []Entry) *Queue {
	return &Queue{entries: entries}
}

// Current returns a pointer to the entry being viewed, or nil if empty.
func (q *Queue) Current() *Entry {
	if q.current < 0 || q.current >= len(q.entries) {
		return nil
	}
	return &q.entries[q.current]
}

// Advance moves the current index forward by one. Returns false if already
// at the end.
func (q *Queue) Advance() bool {
	if q.current+1 >= len(q.entries) {
		return false
	}
	q.current++
	return true
}

// Previous moves the current index back by one. Returns false if already at
// the start.
func (q *Queue) Previous() bool {
	if q.current <= 0 {
		return false
	}
	q.current--
	return true
}

// Entry returns a pointer to the entry at the given index, or nil if out
// of range.
func (q *Queue) Entry(i int) *Entry {
	if i < 0 || i >= len(q.entries) {
		return nil
	}
	return &q.entries[i]
}

// Len returns the total number of entries.
func (q *Queue) Len() int {
	return len(q.entries)
}

// CurrentIndex returns the zero-based index of the current entry.
func (q *Queue) CurrentIndex() int {
	return q.current
}

// SetCurrentIndex sets the current entry index directly. Out-of-range
// values are ignored.
func (q *Queue) SetCurrentIndex(i int) {
	if i >= 0 && i < len(q.entries) {
		q.current = i
	}
}
