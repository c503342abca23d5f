package message

import "testing"

func TestMessage_PutAndGet(t *testing.T) {
	m := New("Heartbeat")
	m.Put("message_id", TypeI32, int32(6))

	f, ok := m.Get("message_id")
	if !ok {
		t.Fatal("expected field to exist")
	}
	if f.Type != TypeI32 || f.Value.I32() != 6 || f.Seq != 1 {
		t.Fatalf("unexpected field: %+v", f)
	}
}

func TestMessage_GetMissing(t *testing.T) {
	m := New("empty")
	f, ok := m.Get("nope")
	if ok {
		t.Fatal("expected ok == false")
	}
	if f.Type != TypeNone || f.Seq != 0 {
		t.Fatalf("expected zero Field, got %+v", f)
	}
}

func TestMessage_SeqIsInsertionOrder(t *testing.T) {
	m := New("m")
	m.Put("c", TypeI32, int32(3))
	m.Put("a", TypeI32, int32(1))
	m.Put("b", TypeI32, int32(2))

	fields := m.Fields()
	wantNames := []string{"c", "a", "b"}
	for i, f := range fields {
		if f.Seq != i+1 {
			t.Errorf("field %d: Seq = %d, want %d", i, f.Seq, i+1)
		}
		if f.Name != wantNames[i] {
			t.Errorf("field %d: Name = %q, want %q", i, f.Name, wantNames[i])
		}
	}
}

func TestMessage_ReplacePreservesSeqAndType(t *testing.T) {
	m := New("m")
	m.Put("f", TypeI32, int32(7))
	m.Put("f", TypeI32, int32(9))

	if m.FieldCount() != 1 {
		t.Fatalf("FieldCount() = %d, want 1", m.FieldCount())
	}
	f, ok := m.Get("f")
	if !ok {
		t.Fatal("expected field to exist")
	}
	if f.Seq != 1 || f.Type != TypeI32 || f.Value.I32() != 9 {
		t.Fatalf("unexpected field after replace: %+v", f)
	}
}

func TestMessage_ReplaceIgnoresNewType(t *testing.T) {
	// Open question from the original: replacing a field's value with a
	// different declared type still interprets the raw value under the
	// field's original type. Passing a value of the new type's Go shape
	// here doesn't match the old type, so the replace is silently
	// rejected and the original value survives.
	m := New("m")
	m.Put("f", TypeI32, int32(7))
	m.Put("f", TypeF64, 9.5) // wrong Go type for the stored TypeI32 field

	f, _ := m.Get("f")
	if f.Type != TypeI32 || f.Value.I32() != 7 {
		t.Fatalf("expected original i32 value preserved, got %+v", f)
	}
}

func TestMessage_PutInvalidInputsAreNoop(t *testing.T) {
	m := New("m")
	m.Put("", TypeI32, int32(1))      // empty name
	m.Put("x", TypeNone, int32(1))    // invalid type
	m.Put("y", TypeI32, "wrong-type") // mismatched Go type

	if m.FieldCount() != 0 {
		t.Fatalf("FieldCount() = %d, want 0", m.FieldCount())
	}

	var nilMsg *Message
	nilMsg.Put("z", TypeI32, int32(1)) // must not panic
}

func TestMessage_FieldsEmptyMessage(t *testing.T) {
	m := New("empty")
	fields := m.Fields()
	if len(fields) != 0 {
		t.Fatalf("len(Fields()) = %d, want 0", len(fields))
	}
}

func TestMessage_StringFieldOwnsCopy(t *testing.T) {
	m := New("m")
	b := []byte("abc")
	m.Put("s", TypeString, string(b))
	b[0] = 'X' // mutate the original backing bytes

	f, _ := m.Get("s")
	if f.Value.Str() != "abc" {
		t.Fatalf("Str() = %q, want %q", f.Value.Str(), "abc")
	}
}

func TestMessage_Reset(t *testing.T) {
	m := New("m")
	m.Put("a", TypeI32, int32(1))
	m.Reset("m2")

	if m.Name() != "m2" {
		t.Fatalf("Name() = %q, want %q", m.Name(), "m2")
	}
	if m.FieldCount() != 0 {
		t.Fatalf("FieldCount() = %d, want 0", m.FieldCount())
	}
}
