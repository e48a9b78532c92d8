package strictjson

import "unsafe"

// AllocFunc returns a size-byte block aligned to alignment, or nil.
// size == 0 must return nil without allocating.
type AllocFunc func(size, alignment int, userdata unsafe.Pointer) unsafe.Pointer

// FreeFunc releases a block previously returned by an AllocFunc sharing
// the same userdata. A nil ptr is a no-op.
type FreeFunc func(ptr unsafe.Pointer, userdata unsafe.Pointer)

// Context is an immutable (alloc, free, userdata) triple. Either both
// AllocFunc and FreeFunc are set, or both are nil (the default arena is
// used). A Value carries a reference to the Context that produced it;
// copies re-allocate string storage under the destination's Context,
// moves transfer ownership only when source and destination Contexts are
// identical, otherwise they copy-then-free (see value.go Clone/adopt).
type Context struct {
	allocFn  AllocFunc
	freeFn   FreeFunc
	userdata unsafe.Pointer

	arena *arena // non-nil only for the default Context
}

// defaultContext is shared by every Value that was not explicitly given a
// Context. It is safe for concurrent use: the arena grows by appending new
// chunks, never mutating bytes already handed out.
var defaultContext = NewDefaultContext()

// NewDefaultContext returns a fresh Context backed by an internal chunked
// arena, independent from the package-level default. Use this when a
// caller wants isolated allocation lifetime (e.g. to drop an entire parse
// at once) rather than sharing the process-wide default arena.
func NewDefaultContext() *Context {
	return &Context{arena: newArena(arenaChunkSize)}
}

// NewContext builds a Context around a user-supplied allocator pair.
// alloc and free must both be non-nil, or both nil (in which case
// NewContext behaves like NewDefaultContext).
func NewContext(alloc AllocFunc, free FreeFunc, userdata unsafe.Pointer) *Context {
	if alloc == nil && free == nil {
		return NewDefaultContext()
	}
	return &Context{allocFn: alloc, freeFn: free, userdata: userdata}
}

func (c *Context) isDefault() bool { return c == nil || c.arena != nil && c.allocFn == nil }

// sameAs reports whether two contexts are the identical allocator,
// governing whether Value moves may transfer ownership directly or must
// copy-then-free.
func (c *Context) sameAs(other *Context) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	if c.arena != nil || other.arena != nil {
		return c.arena == other.arena
	}
	return false
}

// allocString copies s into memory owned by c (the arena's bump allocator
// when c is a default Context, or the user AllocFunc otherwise) and
// returns the copy. Used by the parser so that a decoded string's storage
// does not alias the input buffer once escapes have been processed, and
// by Value.Clone so that copies re-allocate under the destination's
// Context.
func (c *Context) allocString(s string) string {
	if len(s) == 0 {
		return ""
	}
	if c == nil {
		c = defaultContext
	}
	if c.allocFn != nil {
		ptr := c.allocFn(len(s), 1, c.userdata)
		if ptr == nil {
			return s // allocator failure: fall back to aliasing, never lose data
		}
		buf := unsafe.Slice((*byte)(ptr), len(s))
		copy(buf, s)
		return b2s(buf)
	}
	return c.arena.allocString(s)
}

// release frees ptr under c's allocator, or is a no-op for the default
// arena (whose chunks are released wholesale when the Context becomes
// unreachable — see arena.go).
func (c *Context) release(ptr unsafe.Pointer) {
	if c != nil && c.freeFn != nil {
		c.freeFn(ptr, c.userdata)
	}
}
