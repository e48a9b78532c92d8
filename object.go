package strictjson

import "sort"

// Object is the interface satisfied by both of this package's object
// backends. Parse picks the backend per ParseOption (see options.go);
// the Go API can construct either directly via NewObject.
type Object interface {
	Get(key string) *Value
	Set(key string, v *Value)
	Delete(key string)
	Len() int
	Keys() []string
	Each(func(key string, v *Value) bool)
}

// orderedObject preserves first-insertion order, matching the JSON text
// it was parsed from. Backed by a slice of pairs (linear-scan Get,
// last-writer-wins Set-in-place) — appropriate for the common case of
// small JSON objects.
type orderedObject struct {
	pairs []objPair
}

type objPair struct {
	key string
	val *Value
}

func newOrderedObject() *orderedObject { return &orderedObject{} }

func (o *orderedObject) Get(key string) *Value {
	for i := range o.pairs {
		if o.pairs[i].key == key {
			return o.pairs[i].val
		}
	}
	return nil
}

func (o *orderedObject) Set(key string, v *Value) {
	for i := range o.pairs {
		if o.pairs[i].key == key {
			o.pairs[i].val = v
			return
		}
	}
	o.pairs = append(o.pairs, objPair{key: key, val: v})
}

func (o *orderedObject) Delete(key string) {
	for i := range o.pairs {
		if o.pairs[i].key == key {
			o.pairs = append(o.pairs[:i], o.pairs[i+1:]...)
			return
		}
	}
}

func (o *orderedObject) Len() int { return len(o.pairs) }

func (o *orderedObject) Keys() []string {
	keys := make([]string, len(o.pairs))
	for i := range o.pairs {
		keys[i] = o.pairs[i].key
	}
	return keys
}

func (o *orderedObject) Each(fn func(key string, v *Value) bool) {
	for i := range o.pairs {
		if !fn(o.pairs[i].key, o.pairs[i].val) {
			return
		}
	}
}

// unorderedObject is backed by a Go map, giving O(1) lookup at the cost
// of losing insertion order; Keys/Each report keys in sorted order so
// that serialization and iteration are at least deterministic.
type unorderedObject struct {
	m map[string]*Value
}

func newUnorderedObject() *unorderedObject {
	return &unorderedObject{m: make(map[string]*Value)}
}

func (o *unorderedObject) Get(key string) *Value { return o.m[key] }

func (o *unorderedObject) Set(key string, v *Value) { o.m[key] = v }

func (o *unorderedObject) Delete(key string) { delete(o.m, key) }

func (o *unorderedObject) Len() int { return len(o.m) }

func (o *unorderedObject) Keys() []string {
	keys := make([]string, 0, len(o.m))
	for k := range o.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (o *unorderedObject) Each(fn func(key string, v *Value) bool) {
	for _, k := range o.Keys() {
		if !fn(k, o.m[k]) {
			return
		}
	}
}

// ToUnordered returns a new unorderedObject containing the same entries
// as o, discarding insertion order. Used when a Value built under one
// ordering policy needs to be merged into a tree using the other.
func ToUnordered(o Object) Object {
	u := newUnorderedObject()
	o.Each(func(k string, v *Value) bool {
		u.Set(k, v)
		return true
	})
	return u
}
