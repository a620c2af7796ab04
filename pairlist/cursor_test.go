package pairlist_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-pairlist/pairlist"
)

func TestCursorWalksInOrder(t *testing.T) {
	l := filled(t, 2)
	it := l.Iterator()

	require.True(t, it.HasNext())
	first, err := it.ReadFirst()
	require.NoError(t, err)
	assert.Equal(t, 1, first)
	second, err := it.ReadSecond()
	require.NoError(t, err)
	assert.Equal(t, "1", second)

	require.True(t, it.HasNext())
	first, err = it.ReadFirst()
	require.NoError(t, err)
	assert.Equal(t, 2, first)
	second, err = it.ReadSecond()
	require.NoError(t, err)
	assert.Equal(t, "2", second)

	assert.False(t, it.HasNext())
}

func TestCursorOnEmptyList(t *testing.T) {
	it := pairlist.New[int, string]().Iterator()
	assert.False(t, it.HasNext())

	_, err := it.ReadFirst()
	assert.ErrorIs(t, err, pairlist.ErrNoSuchElement)
	_, err = it.ReadSecond()
	assert.ErrorIs(t, err, pairlist.ErrNoSuchElement)
}

func TestCursorFailFast(t *testing.T) {
	mutations := map[string]func(l *pairlist.List[int, string]){
		"add":    func(l *pairlist.List[int, string]) { _ = l.Add(3, "3") },
		"remove": func(l *pairlist.List[int, string]) { l.Remove(1, "1") },
		"clear":  func(l *pairlist.List[int, string]) { l.Clear() },
	}
	for name, mutate := range mutations {
		t.Run("it fails ReadSecond after "+name, func(t *testing.T) {
			l := filled(t, 2)
			it := l.Iterator()
			require.True(t, it.HasNext())
			first, err := it.ReadFirst()
			require.NoError(t, err)
			assert.Equal(t, 1, first)

			mutate(l)

			_, err = it.ReadSecond()
			assert.ErrorIs(t, err, pairlist.ErrConcurrentModification)
		})

		t.Run("it fails ReadFirst after "+name, func(t *testing.T) {
			l := filled(t, 2)
			it := l.Iterator()
			mutate(l)

			_, err := it.ReadFirst()
			assert.ErrorIs(t, err, pairlist.ErrConcurrentModification)
		})
	}
}

func TestCursorSurvivesRemoveOfAbsentPair(t *testing.T) {
	l := filled(t, 2)
	it := l.Iterator()
	require.True(t, it.HasNext())
	first, err := it.ReadFirst()
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	assert.False(t, l.Remove(3, "3"))

	second, err := it.ReadSecond()
	require.NoError(t, err)
	assert.Equal(t, "1", second)

	require.True(t, it.HasNext())
	first, err = it.ReadFirst()
	require.NoError(t, err)
	assert.Equal(t, 2, first)
	second, err = it.ReadSecond()
	require.NoError(t, err)
	assert.Equal(t, "2", second)
	assert.False(t, it.HasNext())
}

func TestCursorStaysStale(t *testing.T) {
	l := filled(t, 2)
	it := l.Iterator()
	require.NoError(t, l.Add(3, "3"))

	for i := 0; i < 3; i++ {
		_, err := it.ReadFirst()
		assert.ErrorIs(t, err, pairlist.ErrConcurrentModification)
	}

	// a fresh cursor is unaffected
	first, err := l.Iterator().ReadFirst()
	require.NoError(t, err)
	assert.Equal(t, 1, first)
}

func TestCursorProtocol(t *testing.T) {
	t.Run("it rejects ReadSecond on a fresh cursor", func(t *testing.T) {
		it := filled(t, 2).Iterator()
		_, err := it.ReadSecond()
		assert.ErrorIs(t, err, pairlist.ErrProtocolViolation)
	})

	t.Run("staleness is reported before the protocol", func(t *testing.T) {
		l := filled(t, 2)
		it := l.Iterator()
		require.NoError(t, l.Add(3, "3"))

		_, err := it.ReadSecond()
		assert.ErrorIs(t, err, pairlist.ErrConcurrentModification)
		assert.NotErrorIs(t, err, pairlist.ErrProtocolViolation)
	})

	t.Run("exhaustion is reported before the protocol", func(t *testing.T) {
		it := pairlist.New[int, string]().Iterator()
		_, err := it.ReadSecond()
		assert.ErrorIs(t, err, pairlist.ErrNoSuchElement)
		assert.NotErrorIs(t, err, pairlist.ErrProtocolViolation)
	})

	t.Run("it rejects ReadSecond twice in a row", func(t *testing.T) {
		it := filled(t, 2).Iterator()
		_, err := it.ReadFirst()
		require.NoError(t, err)
		_, err = it.ReadSecond()
		require.NoError(t, err)

		_, err = it.ReadSecond()
		assert.ErrorIs(t, err, pairlist.ErrProtocolViolation)

		// the failed call did not advance
		first, err := it.ReadFirst()
		require.NoError(t, err)
		assert.Equal(t, 2, first)
	})

	t.Run("it allows ReadFirst to be repeated", func(t *testing.T) {
		it := filled(t, 2).Iterator()
		for i := 0; i < 3; i++ {
			first, err := it.ReadFirst()
			require.NoError(t, err)
			assert.Equal(t, 1, first)
		}
		second, err := it.ReadSecond()
		require.NoError(t, err)
		assert.Equal(t, "1", second)
	})
}

func TestCursorExhaustion(t *testing.T) {
	l := filled(t, 1)
	it := l.Iterator()
	require.NoError(t, it.ForEachRemaining(func(int, string) {}))
	require.False(t, it.HasNext())

	_, err := it.ReadFirst()
	assert.ErrorIs(t, err, pairlist.ErrNoSuchElement)
	_, err = it.ReadSecond()
	assert.ErrorIs(t, err, pairlist.ErrNoSuchElement)
}

func TestCursorForEachRemaining(t *testing.T) {
	t.Run("it drains the rest of the list", func(t *testing.T) {
		l := filled(t, 4)
		it := l.Iterator()
		_, err := it.ReadFirst()
		require.NoError(t, err)
		_, err = it.ReadSecond()
		require.NoError(t, err)

		var got []pairlist.Pair[int, string]
		require.NoError(t, it.ForEachRemaining(func(first int, second string) {
			got = append(got, pairlist.NewPair(first, second))
		}))
		assert.Equal(t, []pairlist.Pair[int, string]{
			{First: 2, Second: "2"},
			{First: 3, Second: "3"},
			{First: 4, Second: "4"},
		}, got)
		assert.False(t, it.HasNext())
	})

	t.Run("it surfaces a modification made by the action", func(t *testing.T) {
		l := filled(t, 3)
		calls := 0
		err := l.Iterator().ForEachRemaining(func(first int, second string) {
			calls++
			l.Remove(first, second)
		})
		assert.ErrorIs(t, err, pairlist.ErrConcurrentModification)
		assert.Equal(t, 1, calls)
	})

	t.Run("it rejects a nil action", func(t *testing.T) {
		err := filled(t, 1).Iterator().ForEachRemaining(nil)
		assert.ErrorIs(t, err, pairlist.ErrInvalidOption)
	})
}

func TestCursorRemoveUnsupported(t *testing.T) {
	l := filled(t, 2)
	it := l.Iterator()
	_, err := it.ReadFirst()
	require.NoError(t, err)

	err = it.Remove()
	assert.ErrorIs(t, err, pairlist.ErrProtocolViolation)
	assert.True(t, errors.Is(err, errors.ErrUnsupported))
	assert.Equal(t, 2, l.Size())
}

func TestCursorAsIterator(t *testing.T) {
	var it pairlist.Iterator[int, string] = filled(t, 3).Iterator()
	sum := 0
	require.NoError(t, it.ForEachRemaining(func(first int, _ string) { sum += first }))
	assert.Equal(t, 6, sum)
}

func TestTwoCursorsAreIndependent(t *testing.T) {
	l := filled(t, 2)
	a, b := l.Iterator(), l.Iterator()

	_, err := a.ReadFirst()
	require.NoError(t, err)
	_, err = a.ReadSecond()
	require.NoError(t, err)

	first, err := b.ReadFirst()
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	l.Clear()
	_, err = a.ReadFirst()
	assert.ErrorIs(t, err, pairlist.ErrConcurrentModification)
	_, err = b.ReadSecond()
	assert.ErrorIs(t, err, pairlist.ErrConcurrentModification)
}
