package surface

import "sync"

// Buffer is an in-memory Surface that keeps the last content written to each
// mount it was created with.
type Buffer struct {
	mu     sync.Mutex
	mounts map[MountID]*slot
}

type slot struct {
	buf     *Buffer
	content Content
	writes  int
}

func (s *slot) Set(c Content) {
	s.buf.mu.Lock()
	defer s.buf.mu.Unlock()
	s.content = c
	s.writes++
}

// NewBuffer returns a Buffer exposing only ids.
func NewBuffer(ids ...MountID) *Buffer {
	b := &Buffer{mounts: make(map[MountID]*slot, len(ids))}
	for _, id := range ids {
		b.mounts[id] = &slot{buf: b}
	}
	return b
}

// NewFullBuffer returns a Buffer exposing every mount point.
func NewFullBuffer() *Buffer {
	return NewBuffer(All()...)
}

// All lists every mount point.
func All() []MountID {
	return []MountID{Button, Counter, List, CalendarGrid, MonthLabel, PrevMonth, NextMonth, ListToggle, CalendarToggle}
}

func (b *Buffer) Mount(id MountID) (Mount, bool) {
	s, ok := b.mounts[id]
	if !ok {
		return nil, false
	}
	return s, true
}

// Get returns the last content written to id.
func (b *Buffer) Get(id MountID) (Content, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.mounts[id]
	if !ok || s.writes == 0 {
		return Content{}, false
	}
	return s.content, true
}

// Writes returns how many times id has been written.
func (b *Buffer) Writes(id MountID) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if s, ok := b.mounts[id]; ok {
		return s.writes
	}
	return 0
}
