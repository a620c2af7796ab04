package pairlist_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-pairlist/pairlist"
)

type caseless string

func (c caseless) Equal(other caseless) bool {
	return strings.EqualFold(string(c), string(other))
}

type tagged struct {
	Name string
	Tags []string
}

func TestEqual(t *testing.T) {
	one, otherOne := 1, 1

	t.Run("nil handling", func(t *testing.T) {
		assert.True(t, pairlist.Equal[*int](nil, nil))
		assert.False(t, pairlist.Equal[*int](nil, &one))
		assert.False(t, pairlist.Equal[*int](&one, nil))
		assert.True(t, pairlist.Equal[error](nil, nil))
		assert.True(t, pairlist.Equal[any](nil, nil))
		assert.True(t, pairlist.Equal[[]int](nil, nil))
		assert.True(t, pairlist.Equal[map[string]int](nil, nil))
		assert.False(t, pairlist.Equal[map[string]int](map[string]int{}, nil))
	})

	t.Run("comparable values", func(t *testing.T) {
		assert.True(t, pairlist.Equal(42, 42))
		assert.False(t, pairlist.Equal(42, 43))
		assert.True(t, pairlist.Equal("a", "a"))
		assert.True(t, pairlist.Equal(&one, &one))
		assert.False(t, pairlist.Equal(&one, &otherOne), "pointers compare by identity")
		assert.False(t, pairlist.Equal[any](1, "1"))
	})

	t.Run("equaler", func(t *testing.T) {
		assert.True(t, pairlist.Equal[caseless]("Go", "gO"))
		assert.False(t, pairlist.Equal[caseless]("Go", "Rust"))
	})

	t.Run("non-comparable values", func(t *testing.T) {
		assert.True(t, pairlist.Equal([]int{1, 2}, []int{1, 2}))
		assert.False(t, pairlist.Equal([]int{1, 2}, []int{2, 1}))
		assert.True(t, pairlist.Equal(
			tagged{Name: "a", Tags: []string{"x"}},
			tagged{Name: "a", Tags: []string{"x"}},
		))
		assert.True(t, pairlist.Equal[any]([]byte("k"), []byte("k")))
	})

	t.Run("errors compare by identity", func(t *testing.T) {
		err := errors.New("boom")
		assert.True(t, pairlist.Equal(err, err))
		assert.False(t, pairlist.Equal(err, errors.New("boom")))
	})
}

func TestComparable(t *testing.T) {
	assert.True(t, pairlist.Comparable(3, 3))
	assert.False(t, pairlist.Comparable("a", "b"))
}
