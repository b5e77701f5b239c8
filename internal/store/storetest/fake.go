// Package storetest provides an in-memory store.Client for tests.
package storetest

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"
)

// Operation names accepted by FailOn and Calls.
const (
	OpList   = "list"
	OpInsert = "insert"
	OpDelete = "delete"
	OpPing   = "ping"
)

// Insert is one recorded insert as the store received it.
type Insert struct {
	Table string
	Row   map[string]any
}

// Fake keeps rows as JSON objects per table. It assigns ids and strictly
// increasing created_at values so newest-first ordering is deterministic.
type Fake struct {
	mu       sync.Mutex
	tables   map[string][]map[string]json.RawMessage
	nextID   uint64
	clock    time.Time
	errs     map[string]error
	calls    map[string]int
	inserted []Insert
}

func New() *Fake {
	return &Fake{
		tables: make(map[string][]map[string]json.RawMessage),
		clock:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		errs:   make(map[string]error),
		calls:  make(map[string]int),
	}
}

// FailOn makes every later call of op return err. A nil err clears it.
func (f *Fake) FailOn(op string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err == nil {
		delete(f.errs, op)
		return
	}
	f.errs[op] = err
}

// Calls reports how many times op was invoked.
func (f *Fake) Calls(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

// Inserted returns the inserts received so far.
func (f *Fake) Inserted() []Insert {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Insert(nil), f.inserted...)
}

// Seed inserts row directly, bypassing error injection and call counts.
func (f *Fake) Seed(table string, row any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.insertLocked(table, row); err != nil {
		panic(err)
	}
}

func (f *Fake) List(_ context.Context, table string, dest any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[OpList]++
	if err := f.errs[OpList]; err != nil {
		return err
	}

	rows := f.tables[table]
	if rows == nil {
		rows = []map[string]json.RawMessage{}
	}
	raw, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}

func (f *Fake) Insert(_ context.Context, table string, row any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[OpInsert]++
	if err := f.errs[OpInsert]; err != nil {
		return err
	}
	return f.insertLocked(table, row)
}

func (f *Fake) Delete(_ context.Context, table string, id uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[OpDelete]++
	if err := f.errs[OpDelete]; err != nil {
		return err
	}

	want := strconv.FormatUint(id, 10)
	rows := f.tables[table][:0]
	for _, r := range f.tables[table] {
		if string(r["id"]) != want {
			rows = append(rows, r)
		}
	}
	f.tables[table] = rows
	return nil
}

func (f *Fake) Ping(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[OpPing]++
	return f.errs[OpPing]
}

func (f *Fake) insertLocked(table string, row any) error {
	raw, err := json.Marshal(row)
	if err != nil {
		return err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return err
	}
	delete(fields, "id")
	delete(fields, "created_at")
	delete(fields, "updated_at")

	var received map[string]any
	if err := json.Unmarshal(mustMarshal(fields), &received); err != nil {
		return err
	}
	f.inserted = append(f.inserted, Insert{Table: table, Row: received})

	f.nextID++
	f.clock = f.clock.Add(time.Second)
	fields["id"] = mustMarshal(f.nextID)
	fields["created_at"] = mustMarshal(f.clock)

	// Newest first, matching the real clients' ordering.
	f.tables[table] = append([]map[string]json.RawMessage{fields}, f.tables[table]...)

	return json.Unmarshal(mustMarshal(fields), row)
}

func mustMarshal(v any) json.RawMessage {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return raw
}
