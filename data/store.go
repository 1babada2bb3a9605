// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package data implements the data segment: named, typed variables with
// monotonically increasing addresses.
package data

import (
	"iter"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

const MAX_LENGTH = 1 << 20 // Maximum elements of one variable.

var nameRegexp = regexp.MustCompile(`^[A-Z_@$?][A-Z0-9_@$?]*$`)

// Store is the variable store of the data segment.
type Store struct {
	vars  map[string]*Variable
	order []*Variable
	next  int // Next free address.
}

// Declare declares a new variable with initial values. Array declarations
// keep the array form even with a single element.
func (st *Store) Declare(name string, typ Type, values []int64, array bool) (v *Variable, err error) {
	name = strings.ToUpper(name)
	if !nameRegexp.MatchString(name) {
		err = ErrVariableInvalid
		return
	}
	if len(values) == 0 || len(values) > MAX_LENGTH {
		err = ErrLengthInvalid
		return
	}
	if _, ok := st.vars[name]; ok {
		err = ErrVariableDuplicate
		return
	}

	v = &Variable{
		Name:    name,
		Type:    typ,
		Address: st.next,
		Values:  make([]int64, len(values)),
		Array:   array,
	}
	for n, val := range values {
		v.Values[n] = typ.Truncate(val)
	}

	if st.vars == nil {
		st.vars = make(map[string]*Variable)
	}
	st.vars[name] = v
	st.order = append(st.order, v)
	st.next += v.Size() * v.Length()

	return
}

// Lookup finds a variable by name, in any case.
func (st *Store) Lookup(name string) (v *Variable, ok bool) {
	v, ok = st.vars[strings.ToUpper(name)]
	return
}

// At finds the variable element starting at address.
func (st *Store) At(address int) (v *Variable, index int, err error) {
	for _, v = range st.order {
		var ok bool
		index, ok = v.Contains(address)
		if ok {
			return
		}
	}

	v = nil
	err = ErrAddress(address)
	return
}

// All iterates the variables in declaration (address) order.
func (st *Store) All() iter.Seq[*Variable] {
	return slices.Values(st.order)
}

// Addresses iterates variable names and their addresses.
func (st *Store) Addresses() iter.Seq2[string, string] {
	return func(yield func(name string, address string) bool) {
		for _, v := range st.order {
			if !yield(v.Name, strconv.Itoa(v.Address)) {
				return
			}
		}
	}
}

// Len is the number of declared variables.
func (st *Store) Len() int {
	return len(st.order)
}

// Reset removes all variables.
func (st *Store) Reset() {
	clear(st.vars)
	st.order = st.order[:0]
	st.next = 0
}
