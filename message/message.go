// Package message implements the dynamic message container: a named,
// ordered, heterogeneous record whose schema (the set of named, typed
// fields) is discovered at runtime rather than fixed at compile time.
//
// A Message is created with New, populated by repeated calls to Put, and
// read back with Get or Fields. There is no separate Free/Destroy pair —
// Go's garbage collector reclaims a Message and everything it owns once
// it is no longer referenced.
//
// A Message is not safe for concurrent mutation, nor for concurrent
// read-during-write. Distinct Messages are independent.
package message

type fieldEntry struct {
	name  string
	typ   Type
	value Value
	seq   int
}

// Message is a named, ordered collection of typed fields, keyed by name
// with O(1) expected lookup and iterable in insertion (Seq) order.
type Message struct {
	name        string
	order       []*fieldEntry
	index       map[string]int
	initialized bool
}

// New allocates and initializes an empty Message with the given name.
func New(name string) *Message {
	m := &Message{}
	m.init(name)
	return m
}

func (m *Message) init(name string) {
	m.name = name
	m.order = nil
	m.index = make(map[string]int)
	m.initialized = true
}

// Name returns the message's name.
func (m *Message) Name() string {
	if m == nil {
		return ""
	}
	return m.name
}

// FieldCount returns the number of fields currently in the message.
func (m *Message) FieldCount() int {
	if m == nil || !m.initialized {
		return 0
	}
	return len(m.order)
}

// Put adds or updates a field.
//
// If name is not already present, a new field is appended with the next
// Seq and its value set from value, interpreted according to typ.
//
// If name is already present, the value is replaced in place: the
// field's existing Type and Seq are kept, and the typ argument passed
// here is ignored — the new value is decoded under the field's original
// type. This mirrors the original C implementation's update path, which
// looks up the existing field and reuses its stored type. There is no
// operation that changes a field's type or removes a single field; Reset
// clears every field at once.
//
// Put silently does nothing if m is nil or uninitialized, name is empty,
// typ is not a settable type, or value's concrete Go type doesn't match
// the type being written.
func (m *Message) Put(name string, typ Type, value any) {
	if m == nil || !m.initialized || name == "" {
		return
	}
	if idx, ok := m.index[name]; ok {
		e := m.order[idx]
		v, ok := valueFrom(e.typ, value)
		if !ok {
			return
		}
		e.value = v
		return
	}
	if !typ.valid() {
		return
	}
	v, ok := valueFrom(typ, value)
	if !ok {
		return
	}
	e := &fieldEntry{name: name, typ: typ, value: v, seq: len(m.order) + 1}
	m.index[name] = len(m.order)
	m.order = append(m.order, e)
}

// RegisterField adds a field with no value yet, allocating its Seq. This
// exists for package frame's decode path, which must reserve a field's
// position before its value is known — see Field's Seq documentation. Most
// callers want Put instead.
func (m *Message) RegisterField(name string, typ Type) {
	if m == nil || !m.initialized || name == "" {
		return
	}
	if _, ok := m.index[name]; ok {
		return
	}
	e := &fieldEntry{name: name, typ: typ, seq: len(m.order) + 1}
	m.index[name] = len(m.order)
	m.order = append(m.order, e)
}

// Get looks up a field by name. ok is false if the message is
// uninitialized or the field doesn't exist, in which case the returned
// Field is empty apart from Type == TypeNone (Seq == 0).
func (m *Message) Get(name string) (Field, bool) {
	if m == nil || !m.initialized || name == "" {
		return Field{Type: TypeNone}, false
	}
	idx, ok := m.index[name]
	if !ok {
		return Field{Type: TypeNone}, false
	}
	return fieldFromEntry(m.order[idx]), true
}

// Fields returns a freshly allocated snapshot of every field, ordered by
// Seq: Fields()[i].Seq == i+1 for every valid i. The returned Fields are
// independent copies and do not alias the Message's internal storage.
func (m *Message) Fields() []Field {
	if m == nil || !m.initialized || len(m.order) == 0 {
		return []Field{}
	}
	out := make([]Field, len(m.order))
	for i, e := range m.order {
		out[i] = fieldFromEntry(e)
	}
	return out
}

// Reset empties the message in place and assigns it a new name, as if it
// had just been created fresh by New. Existing Field snapshots obtained
// from Fields or Get before the call are unaffected — they own their own
// copies.
func (m *Message) Reset(name string) {
	if m == nil {
		return
	}
	m.init(name)
}

func fieldFromEntry(e *fieldEntry) Field {
	return Field{Name: e.name, Type: e.typ, Value: e.value, Seq: e.seq}
}
