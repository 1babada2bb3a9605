package data

import (
	"fmt"
	"strings"
)

// Variable is a named, typed entry of the data segment.
type Variable struct {
	Name    string  // Upper case name.
	Type    Type    // Element type.
	Address int     // Byte offset of element 0 in the data segment.
	Values  []int64 // Element values, len >= 1.
	Array   bool    // Declared with an array form.
}

// Size returns the element size in bytes.
func (v *Variable) Size() int {
	return v.Type.Size()
}

// Length returns the number of elements.
func (v *Variable) Length() int {
	return len(v.Values)
}

// Get reads element index.
func (v *Variable) Get(index int) (value int64, err error) {
	if index < 0 || index >= len(v.Values) {
		err = ErrIndexRange
		return
	}
	value = v.Values[index]
	return
}

// Set writes element index, truncated to the element width.
func (v *Variable) Set(index int, value int64) (err error) {
	if index < 0 || index >= len(v.Values) {
		err = ErrIndexRange
		return
	}
	v.Values[index] = v.Type.Truncate(value)
	return
}

// Contains returns the element index at address, if any.
func (v *Variable) Contains(address int) (index int, ok bool) {
	offset := address - v.Address
	if offset < 0 || offset >= v.Size()*v.Length() || offset%v.Size() != 0 {
		return
	}
	return offset / v.Size(), true
}

func (v *Variable) String() string {
	if !v.Array {
		return fmt.Sprintf("%v %v %v", v.Name, v.Type, v.Values[0])
	}
	vals := make([]string, len(v.Values))
	for n, val := range v.Values {
		vals[n] = fmt.Sprint(val)
	}
	return fmt.Sprintf("%v %v [%v]", v.Name, v.Type, strings.Join(vals, " "))
}
