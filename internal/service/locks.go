package service

import (
	"sort"
	"sync"
)

// accountLocks serializes balance mutations per account so an
// interactive withdrawal and the scheduler paying a due bill on the same
// account cannot race on the read-modify-write. Transfers lock both
// accounts in ascending number order to avoid deadlock.
type accountLocks struct {
	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func newAccountLocks() *accountLocks {
	return &accountLocks{locks: make(map[int]*sync.Mutex)}
}

func (l *accountLocks) forAccount(number int) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[number]
	if !ok {
		m = &sync.Mutex{}
		l.locks[number] = m
	}
	return m
}

// acquire locks the given account numbers (zeroes and duplicates
// ignored) and returns the matching release function.
func (l *accountLocks) acquire(numbers ...int) func() {
	unique := make([]int, 0, len(numbers))
	seen := make(map[int]bool, len(numbers))
	for _, n := range numbers {
		if n == 0 || seen[n] {
			continue
		}
		seen[n] = true
		unique = append(unique, n)
	}
	sort.Ints(unique)

	held := make([]*sync.Mutex, 0, len(unique))
	for _, n := range unique {
		m := l.forAccount(n)
		m.Lock()
		held = append(held, m)
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}
