package cpu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagsNamed(t *testing.T) {
	assert := assert.New(t)

	var fl Flags
	for _, name := range flagOrder {
		assert.False(fl.Get(name), name)
		fl.Set(name, true)
		assert.True(fl.Get(name), name)
	}

	assert.True(fl.Has(FLAG_CF | FLAG_OF))
	fl.Set("cf", false)
	assert.False(fl.Has(FLAG_CF))

	// Unknown names are total.
	fl.Set("XF", true)
	assert.False(fl.Get("XF"))
	assert.False(IsFlag("XF"))
	assert.True(IsFlag("zf"))
}

func TestFlagsArithmetic(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		a, b   int32
		add    bool
		expect map[string]bool
	}){
		{"max+1", math.MaxInt32, 1, true, map[string]bool{
			"OF": true, "SF": true, "ZF": false, "CF": true, "AF": true, "PF": true}},
		{"1+1", 1, 1, true, map[string]bool{
			"OF": false, "SF": false, "ZF": false, "CF": false, "AF": false, "PF": false}},
		{"-1+1", -1, 1, true, map[string]bool{
			"OF": false, "SF": false, "ZF": true, "CF": false, "AF": true, "PF": true}},
		{"min+min", math.MinInt32, math.MinInt32, true, map[string]bool{
			"OF": true, "SF": false, "ZF": true, "CF": false}},
		{"5-5", 5, 5, false, map[string]bool{
			"ZF": true, "CF": false, "OF": false, "SF": false}},
		{"1-2", 1, 2, false, map[string]bool{
			"ZF": false, "CF": true, "OF": false, "SF": true}},
		{"min-1", math.MinInt32, 1, false, map[string]bool{
			"CF": true, "OF": true, "SF": false}},
	}

	for _, entry := range table {
		var fl Flags
		var result int32
		if entry.add {
			result = entry.a + entry.b
		} else {
			result = entry.a - entry.b
		}
		fl.Arithmetic(result, entry.a, entry.b, entry.add)
		for name, value := range entry.expect {
			assert.Equal(value, fl.Get(name), "%v %v", entry.name, name)
		}
	}
}

func TestFlagsLogic(t *testing.T) {
	assert := assert.New(t)

	var fl Flags
	fl.Put(FLAG_CF|FLAG_OF|FLAG_AF, true)

	fl.Logic(0)
	assert.True(fl.Get("ZF"))
	assert.True(fl.Get("PF"))
	assert.False(fl.Get("CF"))
	assert.False(fl.Get("OF"))
	assert.True(fl.Get("AF"))

	fl.Logic(-8)
	assert.False(fl.Get("ZF"))
	assert.True(fl.Get("SF"))
	assert.False(fl.Get("PF"))
}

func TestFlagsString(t *testing.T) {
	assert := assert.New(t)

	fl := FLAG_ZF
	assert.Equal("CF=false PF=false AF=false ZF=true SF=false OF=false", fl.String())
}
