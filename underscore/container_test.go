package underscore_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-underscore/underscore"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func ints(ns ...int) *underscore.Container {
	values := make([]any, len(ns))
	for i, n := range ns {
		values[i] = n
	}
	return underscore.New(values...)
}

func intKeys(ns ...int) []underscore.Key {
	keys := make([]underscore.Key, len(ns))
	for i, n := range ns {
		keys[i] = underscore.IntKey(n)
	}
	return keys
}

func isEven(v any, _ underscore.Key) underscore.Match {
	return underscore.Bool(v.(int)%2 == 0)
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

func TestCreate_List(t *testing.T) {
	c, err := underscore.Create(underscore.List(1, 2, 3, 4))
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3, 4}, c.Values())
	assert.Equal(t, intKeys(0, 1, 2, 3), c.Keys())
	assert.True(t, c.IsList())
}

func TestCreate_Container(t *testing.T) {
	src := ints(1, 2, 3, 4)
	c, err := underscore.Create(src)
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3, 4}, c.Values())

	src.Push(5)
	c.Set(underscore.IntKey(0), 100)
	assert.Equal(t, []any{100, 2, 3, 4}, c.Values(), "copy must not see source mutations")
	assert.Equal(t, []any{1, 2, 3, 4, 5}, src.Values(), "source must not see copy mutations")
}

func TestCreate_NilSourceIsEmpty(t *testing.T) {
	c, err := underscore.Create(nil)
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}

func TestCreate_NilContainer(t *testing.T) {
	var missing *underscore.Container
	_, err := underscore.Create(missing)
	assert.ErrorIs(t, err, underscore.ErrInvalidInput)
}

func TestCreate_PairsLaterDuplicateOverwritesInPlace(t *testing.T) {
	c, err := underscore.Create(underscore.Pairs(
		underscore.E("a", 1),
		underscore.E("b", 2),
		underscore.E("a", 3),
	))
	require.NoError(t, err)
	assert.Equal(t, []underscore.Key{underscore.StringKey("a"), underscore.StringKey("b")}, c.Keys())
	assert.Equal(t, []any{3, 2}, c.Values())
	assert.False(t, c.IsList())
}

func TestCreate_PairsThenPushUsesNextIntegerKey(t *testing.T) {
	c, err := underscore.Create(underscore.Pairs(underscore.E(5, "five"), underscore.E("x", "ex")))
	require.NoError(t, err)
	c.Push("six")
	assert.Equal(t, []underscore.Key{underscore.IntKey(5), underscore.StringKey("x"), underscore.IntKey(6)}, c.Keys())
}

func TestFrom(t *testing.T) {
	t.Run("typed slice", func(t *testing.T) {
		c, err := underscore.From([]int{1, 2, 3})
		require.NoError(t, err)
		assert.Equal(t, []any{1, 2, 3}, c.Values())
	})

	t.Run("array", func(t *testing.T) {
		c, err := underscore.From([2]string{"a", "b"})
		require.NoError(t, err)
		assert.Equal(t, []any{"a", "b"}, c.Values())
	})

	t.Run("string map is sorted by key", func(t *testing.T) {
		c, err := underscore.From(map[string]any{"b": 2, "a": 1})
		require.NoError(t, err)
		assert.Equal(t, []underscore.Key{underscore.StringKey("a"), underscore.StringKey("b")}, c.Keys())
		assert.Equal(t, []any{1, 2}, c.Values())
	})

	t.Run("int map is sorted by key", func(t *testing.T) {
		c, err := underscore.From(map[int]string{2: "x", 0: "y"})
		require.NoError(t, err)
		assert.Equal(t, intKeys(0, 2), c.Keys())
		assert.Equal(t, []any{"y", "x"}, c.Values())
	})

	t.Run("entries", func(t *testing.T) {
		c, err := underscore.From([]underscore.Entry{underscore.E("k", "v")})
		require.NoError(t, err)
		v, err := c.Get(underscore.StringKey("k"))
		require.NoError(t, err)
		assert.Equal(t, "v", v)
	})

	t.Run("container", func(t *testing.T) {
		c, err := underscore.From(ints(1, 2))
		require.NoError(t, err)
		assert.Equal(t, []any{1, 2}, c.Values())
	})

	for name, input := range map[string]any{
		"string":  "foo",
		"int":     42,
		"nil":     nil,
		"bytes":   []byte("foo"),
		"struct":  struct{ A int }{1},
		"bad map": map[float64]any{1.5: "x"},
	} {
		t.Run("rejects "+name, func(t *testing.T) {
			_, err := underscore.From(input)
			assert.ErrorIs(t, err, underscore.ErrInvalidInput)
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		text, sep string
		want      []any
	}{
		{"foo", "", []any{"f", "o", "o"}},
		{"foo bar baz", " ", []any{"foo", "bar", "baz"}},
		{"a,,b", ",", []any{"a", "", "b"}},
		{"", ",", []any{""}},
		{"", "", []any{}},
		{"héllo", "", []any{"h", "é", "l", "l", "o"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, underscore.Split(tt.text, tt.sep).Values(), "Split(%q, %q)", tt.text, tt.sep)
	}
}

func TestSplit_ThenMapAndReduce(t *testing.T) {
	sum := underscore.Split("1234", "").
		Map(func(v any) any { return int(v.(string)[0] - '0') }).
		Reduce(func(acc, v any) any {
			n, _ := acc.(int)
			return n + v.(int)
		}, nil)
	assert.Equal(t, 10, sum)
}

// ─────────────────────────────────────────────────────────────────────────────
// Indexed access
// ─────────────────────────────────────────────────────────────────────────────

func TestIndexedAccess(t *testing.T) {
	c := ints(1, 2, 3, 4)
	assert.True(t, c.Has(underscore.IntKey(1)))

	v, err := c.Get(underscore.IntKey(1))
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	c.Set(underscore.IntKey(1), 3)
	assert.Equal(t, []any{1, 3, 3, 4}, c.Values())

	c.Remove(underscore.IntKey(1))
	assert.Equal(t, []any{1, 3, 4}, c.Values())
	assert.Equal(t, intKeys(0, 1, 2), c.Keys())

	v, err = c.At(1)
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestGet_Missing(t *testing.T) {
	_, err := ints(1).Get(underscore.IntKey(5))
	assert.ErrorIs(t, err, underscore.ErrKeyNotFound)

	_, err = ints(1).Get(underscore.StringKey("0"))
	assert.ErrorIs(t, err, underscore.ErrKeyNotFound, "string key \"0\" is not integer key 0")
}

func TestSet_AbsentKeyAppends(t *testing.T) {
	c := ints(1, 2).Set(underscore.StringKey("x"), 9)
	assert.Equal(t, []underscore.Key{underscore.IntKey(0), underscore.IntKey(1), underscore.StringKey("x")}, c.Keys())
	assert.Equal(t, []any{1, 2, 9}, c.Values())
}

func TestRemove_NormalisesToList(t *testing.T) {
	c, err := underscore.Create(underscore.Pairs(underscore.E("a", 1), underscore.E("b", 2), underscore.E(7, 3)))
	require.NoError(t, err)

	c.Remove(underscore.StringKey("a"))
	assert.Equal(t, intKeys(0, 1), c.Keys())
	assert.Equal(t, []any{2, 3}, c.Values())
}

func TestRemove_AbsentKeyStillNormalises(t *testing.T) {
	c, err := underscore.Create(underscore.Pairs(underscore.E("a", 1), underscore.E(9, 2)))
	require.NoError(t, err)

	c.Remove(underscore.StringKey("missing"))
	assert.Equal(t, intKeys(0, 1), c.Keys())
	assert.Equal(t, []any{1, 2}, c.Values())

	c.Push(3)
	assert.Equal(t, intKeys(0, 1, 2), c.Keys())
}

func TestLookup(t *testing.T) {
	c, err := underscore.Create(underscore.Pairs(underscore.E("name", "bob"), underscore.E(0, "zero")))
	require.NoError(t, err)

	v, ok := c.Lookup("name")
	assert.True(t, ok)
	assert.Equal(t, "bob", v)

	v, ok = c.Lookup("0")
	assert.True(t, ok)
	assert.Equal(t, "zero", v)

	_, ok = c.Lookup("missing")
	assert.False(t, ok)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration & accessors
// ─────────────────────────────────────────────────────────────────────────────

func TestIter(t *testing.T) {
	c := ints(1, 2, 3, 4)

	count := 0
	for k, v := range c.Iter() {
		i, ok := k.Int()
		require.True(t, ok)
		assert.Equal(t, i+1, v)
		count++
	}
	assert.Equal(t, 4, count)

	// Restartable, and stops early on break.
	seen := 0
	for range c.Iter() {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}

func TestCountAndEmptiness(t *testing.T) {
	assert.Equal(t, 3, ints(1, 2, 3).Count())
	assert.True(t, underscore.Empty().IsEmpty())
	assert.False(t, underscore.Empty().IsNotEmpty())
	assert.True(t, ints(1).IsNotEmpty())
}

func TestEntriesAndToMap(t *testing.T) {
	c, err := underscore.Create(underscore.Pairs(underscore.E("a", 1), underscore.E(3, "x")))
	require.NoError(t, err)

	assert.Equal(t, []underscore.Entry{
		{Key: underscore.StringKey("a"), Value: 1},
		{Key: underscore.IntKey(3), Value: "x"},
	}, c.Entries())
	assert.Equal(t, map[underscore.Key]any{
		underscore.StringKey("a"): 1,
		underscore.IntKey(3):      "x",
	}, c.ToMap())
}

func TestToJSON(t *testing.T) {
	assert.Equal(t, "[1,2,3]", ints(1, 2, 3).String())
	assert.Equal(t, "[]", underscore.Empty().String())

	c, err := underscore.Create(underscore.Pairs(underscore.E("a", 1), underscore.E(2, "x")))
	require.NoError(t, err)
	b, err := c.ToJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1,"2":"x"}`, string(b))
	assert.Less(t, strings.Index(string(b), `"a"`), strings.Index(string(b), `"2"`), "key order must be preserved")

	nested := underscore.New(ints(1, 2), "x")
	assert.Equal(t, `[[1,2],"x"]`, nested.String())
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutators
// ─────────────────────────────────────────────────────────────────────────────

func TestPush(t *testing.T) {
	c := underscore.Empty().Push(1).Push(2).Push(3)
	assert.Equal(t, []any{1, 2, 3}, c.Values())
	assert.Equal(t, intKeys(0, 1, 2), c.Keys())
}

func TestPush_ReturnsReceiver(t *testing.T) {
	c := ints(1)
	assert.Same(t, c, c.Push(2))
	assert.Same(t, c, c.Unshift(0))
}

func TestUnshift(t *testing.T) {
	c := underscore.Empty().Unshift(3).Unshift(2).Unshift(1)
	assert.Equal(t, []any{1, 2, 3}, c.Values())
	assert.Equal(t, intKeys(0, 1, 2), c.Keys())
}

func TestUnshift_KeepsStringKeys(t *testing.T) {
	c, err := underscore.Create(underscore.Pairs(underscore.E("a", 1), underscore.E(5, 2)))
	require.NoError(t, err)

	c.Unshift(0)
	assert.Equal(t, []underscore.Key{underscore.IntKey(0), underscore.StringKey("a"), underscore.IntKey(1)}, c.Keys())
	assert.Equal(t, []any{0, 1, 2}, c.Values())
}

func TestPop(t *testing.T) {
	c := ints(1, 2, 3, 4)
	v, ok := c.Pop()
	assert.True(t, ok)
	assert.Equal(t, 4, v)
	assert.Equal(t, []any{1, 2, 3}, c.Values())

	c.Push(5)
	assert.Equal(t, intKeys(0, 1, 2, 3), c.Keys(), "Push after Pop reuses the freed key")
}

func TestPop_Empty(t *testing.T) {
	v, ok := underscore.Empty().Pop()
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestShift(t *testing.T) {
	c := ints(1, 2, 3)
	v, ok := c.Shift()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, []any{2, 3}, c.Values())
	assert.Equal(t, intKeys(0, 1), c.Keys())

	_, ok = underscore.Empty().Shift()
	assert.False(t, ok)
}

// ─────────────────────────────────────────────────────────────────────────────
// Immutability
// ─────────────────────────────────────────────────────────────────────────────

func TestImmutability(t *testing.T) {
	orig := ints(3, 1, 2)
	_ = orig.Map(func(v any) any { return v.(int) * 2 })
	_ = orig.Select(isEven)
	_ = orig.Reverse()
	_ = orig.Sort()
	_ = orig.Snip(1)
	_ = orig.Rotate(1)
	_ = orig.Shuffle()
	_ = orig.Without(1)
	assert.Equal(t, []any{3, 1, 2}, orig.Values())
	assert.Equal(t, intKeys(0, 1, 2), orig.Keys())
}
