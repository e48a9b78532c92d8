package strictjson

import "fmt"

// Kind identifies which of the eight JSON value shapes a Value holds.
// Long/Float/Double are kept as three distinct numeric kinds, rather
// than collapsing to one float64, because an in-range integer literal, a
// 32-bit float literal, and an overflowed/fractional literal are
// observably different kinds for this package's purposes.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindLong
	KindFloat
	KindDouble
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindLong:
		return "long"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a tagged union over the eight JSON shapes, in the fastjson-
// style o/a/s/n/t/b field layout, additionally distinguishing
// Long/Float/Double rather than collapsing every number to one field.
//
// A Value's fields outside its Kind are meaningless; gated accessors
// (Bool/Long/Float/Double/Str/Arr/Obj) return ok=false rather than read
// them, and the Must* family panics via a *KindMismatchError.
type Value struct {
	kind Kind
	b    bool
	i64  int64
	f32  float32
	f64  float64
	str  string
	arr  []*Value
	obj  Object
	ctx  *Context
}

// KindMismatchError is the panic value of every Must* accessor called on
// a Value of the wrong Kind, and of Append/Set called on a Value that is
// not an Array/Object respectively.
type KindMismatchError struct {
	Want Kind
	Got  Kind
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("strictjson: expected %s value, got %s", e.Want, e.Got)
}

func mismatch(want, got Kind) { panic(&KindMismatchError{Want: want, Got: got}) }

// NewNull, NewBool, NewLong, NewFloat, NewDouble and NewString build a
// leaf Value under ctx (nil uses the package default Context). Strings
// are copied into ctx's allocator immediately so the returned Value
// never aliases the caller's string backing array across a later mutation
// — moot for Go strings (immutable), but kept consistent with the
// allocator-context invariant every other string-producing path upholds.
func NewNull(ctx *Context) *Value { return &Value{kind: KindNull, ctx: ctx} }

func NewBool(ctx *Context, b bool) *Value { return &Value{kind: KindBool, b: b, ctx: ctx} }

func NewLong(ctx *Context, v int64) *Value { return &Value{kind: KindLong, i64: v, ctx: ctx} }

func NewFloat(ctx *Context, v float32) *Value { return &Value{kind: KindFloat, f32: v, ctx: ctx} }

func NewDouble(ctx *Context, v float64) *Value { return &Value{kind: KindDouble, f64: v, ctx: ctx} }

func NewString(ctx *Context, s string) *Value {
	return &Value{kind: KindString, str: ctx.allocString(s), ctx: ctx}
}

// NewArray builds an empty array Value.
func NewArray(ctx *Context) *Value {
	return &Value{kind: KindArray, arr: nil, ctx: ctx}
}

// NewObject builds an empty object Value backed by the ordered or
// unordered implementation per ordered.
func NewObject(ctx *Context, ordered bool) *Value {
	var o Object
	if ordered {
		o = newOrderedObject()
	} else {
		o = newUnorderedObject()
	}
	return &Value{kind: KindObject, obj: o, ctx: ctx}
}

func (v *Value) Kind() Kind { return v.kind }

func (v *Value) IsNull() bool { return v.kind == KindNull }

func (v *Value) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

func (v *Value) MustBool() bool {
	if v.kind != KindBool {
		mismatch(KindBool, v.kind)
	}
	return v.b
}

func (v *Value) Long() (int64, bool) {
	if v.kind != KindLong {
		return 0, false
	}
	return v.i64, true
}

func (v *Value) MustLong() int64 {
	if v.kind != KindLong {
		mismatch(KindLong, v.kind)
	}
	return v.i64
}

func (v *Value) Float() (float32, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return v.f32, true
}

func (v *Value) MustFloat() float32 {
	if v.kind != KindFloat {
		mismatch(KindFloat, v.kind)
	}
	return v.f32
}

func (v *Value) Double() (float64, bool) {
	if v.kind != KindDouble {
		return 0, false
	}
	return v.f64, true
}

func (v *Value) MustDouble() float64 {
	if v.kind != KindDouble {
		mismatch(KindDouble, v.kind)
	}
	return v.f64
}

// Number coerces any of the three numeric kinds to a float64, returning
// ok=false for every other Kind. A convenience observer for callers that
// do not care which numeric kind a literal parsed as.
func (v *Value) Number() (float64, bool) {
	switch v.kind {
	case KindLong:
		return float64(v.i64), true
	case KindFloat:
		return float64(v.f32), true
	case KindDouble:
		return v.f64, true
	default:
		return 0, false
	}
}

func (v *Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

func (v *Value) MustStr() string {
	if v.kind != KindString {
		mismatch(KindString, v.kind)
	}
	return v.str
}

func (v *Value) Arr() ([]*Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

func (v *Value) MustArr() []*Value {
	if v.kind != KindArray {
		mismatch(KindArray, v.kind)
	}
	return v.arr
}

func (v *Value) Obj() (Object, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.obj, true
}

func (v *Value) MustObj() Object {
	if v.kind != KindObject {
		mismatch(KindObject, v.kind)
	}
	return v.obj
}

// Len reports the element/key count of an array or object Value, and 0
// for every scalar Kind (including Null), never panicking.
func (v *Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return v.obj.Len()
	default:
		return 0
	}
}

// Append adds v2 to the end of an array Value, adopting v2 under v's
// Context (see adopt) so the array never holds a Value whose string/
// nested payloads were allocated under a different, possibly
// shorter-lived, Context.
func (v *Value) Append(v2 *Value) {
	if v.kind != KindArray {
		mismatch(KindArray, v.kind)
	}
	v.arr = append(v.arr, v.adopt(v2))
}

// Index returns a pointer to the element at i, auto-vivifying the array
// with intermediate Null elements if i is beyond the current length, in
// the style of encoding/json-adjacent libraries' Set-by-path helpers. If
// v is not already an Array, it is coerced to one first, discarding any
// prior payload.
func (v *Value) Index(i int) *Value {
	if v.kind != KindArray {
		v.kind = KindArray
		v.arr = nil
		v.obj = nil
		v.str = ""
	}
	for len(v.arr) <= i {
		v.arr = append(v.arr, NewNull(v.ctx))
	}
	return v.arr[i]
}

// Set inserts or overwrites key in an object Value, adopting val under
// v's Context.
func (v *Value) Set(key string, val *Value) {
	if v.kind != KindObject {
		mismatch(KindObject, v.kind)
	}
	v.obj.Set(key, v.adopt(val))
}

// Key returns a pointer to the value at key, auto-vivifying a Null entry
// if key is absent. If v is not already an Object, it is coerced to one
// first, discarding any prior payload.
func (v *Value) Key(key string) *Value {
	if v.kind != KindObject {
		v.kind = KindObject
		v.obj = newOrderedObject()
		v.arr = nil
		v.str = ""
	}
	existing := v.obj.Get(key)
	if existing != nil {
		return existing
	}
	nv := NewNull(v.ctx)
	v.obj.Set(key, nv)
	return nv
}

// Get looks up key in an object Value, returning nil if absent or if v
// is not an object (never panics — use MustObj().Get for a gated lookup).
func (v *Value) Get(key string) *Value {
	if v.kind != KindObject {
		return nil
	}
	return v.obj.Get(key)
}

// ArrayEach and ObjectEach walk a Value's elements, stopping early if fn
// returns false. Both are no-ops on a mismatched Kind.
func (v *Value) ArrayEach(fn func(i int, elem *Value) bool) {
	if v.kind != KindArray {
		return
	}
	for i, e := range v.arr {
		if !fn(i, e) {
			return
		}
	}
}

func (v *Value) ObjectEach(fn func(key string, val *Value) bool) {
	if v.kind != KindObject {
		return
	}
	v.obj.Each(fn)
}

// adopt implements this package's copy-vs-move allocator rule: if val's
// Context is identical to v's, val is linked in directly (a move); if
// val has no Context of its own (was built with a nil ctx), it is
// stamped with v's; otherwise val is deep-copied under v's Context so
// that every reachable string is owned by the tree that now reaches it.
func (v *Value) adopt(val *Value) *Value {
	if val == nil {
		return NewNull(v.ctx)
	}
	if val.ctx == nil {
		val.ctx = v.ctx
		return val
	}
	if val.ctx.sameAs(v.ctx) {
		return val
	}
	return val.Clone(v.ctx)
}

// Clone deep-copies v and everything it reaches into newCtx, reallocating
// every string along the way. Arrays and objects are copied structurally
// (new backing slice / new Object of the same concrete kind), not shared.
// Used when a Value built under one Context is linked into a tree owned
// by a different one.
func (v *Value) Clone(newCtx *Context) *Value {
	switch v.kind {
	case KindString:
		return NewString(newCtx, v.str)
	case KindArray:
		out := NewArray(newCtx)
		out.arr = make([]*Value, len(v.arr))
		for i, e := range v.arr {
			out.arr[i] = e.Clone(newCtx)
		}
		return out
	case KindObject:
		_, ordered := v.obj.(*orderedObject)
		out := NewObject(newCtx, ordered)
		v.obj.Each(func(k string, val *Value) bool {
			out.obj.Set(newCtx.allocString(k), val.Clone(newCtx))
			return true
		})
		return out
	default:
		clone := *v
		clone.ctx = newCtx
		return &clone
	}
}
