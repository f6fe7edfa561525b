// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ordmap implements an ordered map that retains the order in which
// items were added, while also providing fast key-based lookup.
//
// A slice holds the key and value of each item in insertion order, and a map
// holds the index of each key into that slice. Adding, replacing and looking
// up items are all O(1). There is no deletion.
package ordmap

import (
	"fmt"
	"iter"
)

// KeyValue represents a key-value pair.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a generic ordered map that combines the order of a slice
// and the fast key lookup of a map.
type Map[K comparable, V any] struct {

	// Order is the ordered list of keys and values, in the order added.
	Order []KeyValue[K, V]

	// index maps each key to its position in Order.
	index map[K]int
}

// New returns a new ordered map with room for n items.
func New[K comparable, V any](n int) *Map[K, V] {
	return &Map[K, V]{
		Order: make([]KeyValue[K, V], 0, n),
		index: make(map[K]int, n),
	}
}

// Add sets the value for the given key. If the key already exists,
// its value is replaced in place and it keeps its original position;
// otherwise it is appended to the end.
func (om *Map[K, V]) Add(key K, val V) {
	if om.index == nil {
		om.index = make(map[K]int)
	}
	if idx, has := om.index[key]; has {
		om.Order[idx].Value = val
		return
	}
	om.index[key] = len(om.Order)
	om.Order = append(om.Order, KeyValue[K, V]{Key: key, Value: val})
}

// At returns the value for the given key, and whether it was found.
func (om *Map[K, V]) At(key K) (V, bool) {
	if om != nil {
		if idx, ok := om.index[key]; ok {
			return om.Order[idx].Value, true
		}
	}
	var zv V
	return zv, false
}

// Has returns whether the given key is in the map.
func (om *Map[K, V]) Has(key K) bool {
	if om == nil {
		return false
	}
	_, ok := om.index[key]
	return ok
}

// Len returns the number of items in the map.
func (om *Map[K, V]) Len() int {
	if om == nil {
		return 0
	}
	return len(om.Order)
}

// All returns an iterator over the keys and values in insertion order.
func (om *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if om == nil {
			return
		}
		for _, kv := range om.Order {
			if !yield(kv.Key, kv.Value) {
				return
			}
		}
	}
}

// Keys returns the keys in insertion order.
func (om *Map[K, V]) Keys() []K {
	if om == nil {
		return nil
	}
	kl := make([]K, len(om.Order))
	for i, kv := range om.Order {
		kl[i] = kv.Key
	}
	return kl
}

// String returns a string representation of the map.
func (om *Map[K, V]) String() string {
	return fmt.Sprintf("%v", om.Order)
}
