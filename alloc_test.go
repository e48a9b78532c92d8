package strictjson

import (
	"testing"
	"unsafe"
)

func TestDefaultContextAllocStringCopies(t *testing.T) {
	ctx := NewDefaultContext()
	src := []byte("hello")
	s := ctx.allocString(string(src))
	src[0] = 'X'
	if s != "hello" {
		t.Fatalf("allocString aliased the caller's buffer: got %q", s)
	}
}

func TestContextSameAsIdentity(t *testing.T) {
	a := NewDefaultContext()
	b := NewDefaultContext()
	if !a.sameAs(a) {
		t.Fatal("a context must be sameAs itself")
	}
	if a.sameAs(b) {
		t.Fatal("distinct default contexts must not be sameAs")
	}
}

func TestNewContextWithUserAllocator(t *testing.T) {
	var allocated [][]byte
	alloc := func(size, alignment int, userdata unsafe.Pointer) unsafe.Pointer {
		buf := make([]byte, size)
		allocated = append(allocated, buf)
		return unsafe.Pointer(&buf[0])
	}
	free := func(ptr unsafe.Pointer, userdata unsafe.Pointer) {}

	ctx := NewContext(alloc, free, nil)
	s := ctx.allocString("world")
	if s != "world" {
		t.Fatalf("got %q", s)
	}
	if len(allocated) != 1 {
		t.Fatalf("expected exactly one allocation, got %d", len(allocated))
	}
}

func TestNewContextNilPairFallsBackToDefault(t *testing.T) {
	ctx := NewContext(nil, nil, nil)
	if ctx.allocFn != nil || ctx.arena == nil {
		t.Fatal("NewContext(nil, nil, nil) should behave like NewDefaultContext")
	}
}

func TestAllocStringEmptyNeverAllocates(t *testing.T) {
	calls := 0
	alloc := func(size, alignment int, userdata unsafe.Pointer) unsafe.Pointer {
		calls++
		return nil
	}
	free := func(ptr unsafe.Pointer, userdata unsafe.Pointer) {}
	ctx := NewContext(alloc, free, nil)
	if s := ctx.allocString(""); s != "" {
		t.Fatalf("got %q, want empty string", s)
	}
	if calls != 0 {
		t.Fatalf("allocator called %d times for an empty string, want 0", calls)
	}
}
