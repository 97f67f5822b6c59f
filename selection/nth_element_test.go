/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package selection

import (
	"cmp"
	"math"
	"math/rand"
	"slices"
	"sort"
	"strconv"
	"testing"

	"github.com/orderstat/floydrivest-go/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertSelected checks that items is a permutation of original with the
// k-th order statistic at k and the slice partitioned around it.
func assertSelected[T any](t *testing.T, original, items []T, k int, compare common.CompareFn[T]) {
	t.Helper()
	sorted := slices.Clone(original)
	slices.SortFunc(sorted, compare)
	require.Zero(t, compare(sorted[k], items[k]), "wrong item at rank %d", k)
	for i := 0; i < k; i++ {
		if compare(items[i], items[k]) > 0 {
			t.Fatalf("items[%d] sorts after items[%d]", i, k)
		}
	}
	for i := k + 1; i < len(items); i++ {
		if compare(items[i], items[k]) < 0 {
			t.Fatalf("items[%d] sorts before items[%d]", i, k)
		}
	}
	check := slices.Clone(items)
	slices.SortFunc(check, compare)
	assert.Equal(t, sorted, check, "items are not a permutation of the input")
}

func TestNthElementSimple(t *testing.T) {
	items := []int{10, 7, 9, 7, 2, 8, 8, 1, 9, 4}
	err := NthElement(items, 3)
	assert.NoError(t, err)
	assert.Equal(t, 7, items[3])
}

func TestNthElementEveryRank(t *testing.T) {
	for k := 0; k < 10; k++ {
		items := []int{9, 5, 0, 6, 8, 2, 3, 7, 1, 4}
		err := NthElement(items, k)
		assert.NoError(t, err)
		assert.Equal(t, k, items[k])
	}
}

func TestNthElementSequentialCalls(t *testing.T) {
	items := []int{9, 5, 0, 6, 8, 2, 3, 7, 1, 4}
	for k := 0; k < 10; k++ {
		assert.NoError(t, NthElement(items, k))
		assert.Equal(t, k, items[k])
	}
}

func TestNthElementLargePermutation(t *testing.T) {
	rnd := rand.New(rand.NewSource(2024))
	const n = 3000
	perm := rnd.Perm(n)
	items := slices.Clone(perm)
	for k := 0; k < n; k++ {
		copy(items, perm)
		require.NoError(t, NthElement(items, k))
		require.Equal(t, k, items[k], "rank %d", k)
	}
}

func TestNthElementPartitioned(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, n := range []int{1, 2, 3, 7, 100, 600, 601, 602, 1500, 10000} {
		for _, maxValue := range []int{3, n + 1, math.MaxInt32} {
			original := make([]int, n)
			for i := range original {
				original[i] = rnd.Intn(maxValue)
			}
			for _, k := range []int{0, n / 4, n / 2, n - 1} {
				t.Run(strconv.Itoa(n)+"/"+strconv.Itoa(maxValue)+"/"+strconv.Itoa(k), func(t *testing.T) {
					items := slices.Clone(original)
					require.NoError(t, NthElementFunc(items, k, cmp.Compare[int]))
					assertSelected(t, original, items, k, cmp.Compare[int])
				})
			}
		}
	}
}

func TestNthElementBoundaries(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	for _, n := range []int{1, 50, 2000} {
		original := make([]float64, n)
		for i := range original {
			original[i] = rnd.NormFloat64()
		}
		items := slices.Clone(original)
		require.NoError(t, NthElement(items, 0))
		assert.Equal(t, slices.Min(original), items[0])

		items = slices.Clone(original)
		require.NoError(t, NthElement(items, n-1))
		assert.Equal(t, slices.Max(original), items[n-1])
	}
}

func TestNthElementIdempotent(t *testing.T) {
	rnd := rand.New(rand.NewSource(99))
	for _, n := range []int{10, 700, 4000} {
		items := rnd.Perm(n)
		for _, k := range []int{0, n / 3, n - 1} {
			require.NoError(t, NthElement(items, k))
			selected := slices.Clone(items)
			require.NoError(t, NthElement(items, k))
			assert.Equal(t, selected, items, "n=%d k=%d", n, k)
		}
	}
}

func TestNthElementReselectWithDuplicates(t *testing.T) {
	original := []int{0, 3, 1, 3, 9}
	items := slices.Clone(original)
	require.NoError(t, NthElement(items, 3))
	assertSelected(t, original, items, 3, cmp.Compare[int])
	require.NoError(t, NthElement(items, 3))
	assertSelected(t, original, items, 3, cmp.Compare[int])
}

func TestNthElementAllEqual(t *testing.T) {
	items := make([]int, 1000)
	for i := range items {
		items[i] = 7
	}
	require.NoError(t, NthElement(items, 500))
	assert.Equal(t, 7, items[500])
}

func TestNthElementSortedInputs(t *testing.T) {
	for _, n := range []int{5, 1000} {
		ascending := make([]int, n)
		descending := make([]int, n)
		for i := 0; i < n; i++ {
			ascending[i] = i
			descending[i] = n - 1 - i
		}
		for _, k := range []int{0, n / 2, n - 1} {
			items := slices.Clone(ascending)
			require.NoError(t, NthElement(items, k))
			assert.Equal(t, k, items[k])

			items = slices.Clone(descending)
			require.NoError(t, NthElement(items, k))
			assert.Equal(t, k, items[k])
		}
	}
}

func TestNthElementFuncDerivedKey(t *testing.T) {
	type task struct {
		name     string
		priority int
	}
	tasks := []task{{"a", 5}, {"b", 1}, {"c", 4}, {"d", 2}, {"e", 3}}
	byPriority := common.CompareBy(func(t task) int { return t.priority })
	require.NoError(t, NthElementFunc(tasks, 1, byPriority))
	assert.Equal(t, "d", tasks[1].name)

	require.NoError(t, NthElementFunc(tasks, 0, common.Reverse(byPriority)))
	assert.Equal(t, "a", tasks[0].name)
}

func TestNthElementNaN(t *testing.T) {
	items := []float64{3, math.NaN(), 1, 2}
	require.NoError(t, NthElement(items, 0))
	assert.True(t, math.IsNaN(items[0]))
	require.NoError(t, NthElement(items, 1))
	assert.Equal(t, 1.0, items[1])
}

func TestNthElementRangeFunc(t *testing.T) {
	items := []int{9, 8, 7, 6, 5, 4, 3, 2, 1}
	require.NoError(t, NthElementRangeFunc(items, 2, 6, 4, cmp.Compare[int]))
	assert.Equal(t, 5, items[4])
	assert.Equal(t, []int{9, 8}, items[:2])
	assert.Equal(t, []int{2, 1}, items[7:])
}

func TestNthElementInvalidRange(t *testing.T) {
	testCases := []struct {
		name  string
		items []int
		left  int
		right int
		k     int
	}{
		{name: "empty", items: []int{}, left: 0, right: -1, k: 0},
		{name: "negative rank", items: []int{1, 2, 3}, left: 0, right: 2, k: -1},
		{name: "rank past end", items: []int{1, 2, 3}, left: 0, right: 2, k: 3},
		{name: "negative left", items: []int{1, 2, 3}, left: -1, right: 2, k: 1},
		{name: "right past end", items: []int{1, 2, 3}, left: 0, right: 3, k: 1},
		{name: "inverted window", items: []int{1, 2, 3}, left: 2, right: 1, k: 1},
		{name: "rank left of window", items: []int{3, 2, 1}, left: 1, right: 2, k: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			items := slices.Clone(tc.items)
			err := NthElementRangeFunc(items, tc.left, tc.right, tc.k, cmp.Compare[int])
			assert.ErrorIs(t, err, ErrInvalidRange)
			assert.Equal(t, tc.items, items)
		})
	}

	assert.ErrorIs(t, NthElement([]int{}, 0), ErrInvalidRange)
	assert.ErrorIs(t, NthElement([]string{"a"}, 1), ErrInvalidRange)
	assert.ErrorIs(t, NthElementInterface(sort.IntSlice(nil), 0), ErrInvalidRange)
}

func TestNthElementNilCompare(t *testing.T) {
	items := []int{2, 1}
	assert.ErrorIs(t, NthElementFunc(items, 0, nil), ErrNilCompare)
	assert.Equal(t, []int{2, 1}, items)
}

func TestNthElementInterface(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for _, n := range []int{1, 10, 1200} {
		perm := rnd.Perm(n)
		for _, k := range []int{0, n / 2, n - 1} {
			items := slices.Clone(perm)
			require.NoError(t, NthElementInterface(sort.IntSlice(items), k))
			assert.Equal(t, k, items[k])
		}
	}

	words := []string{"pear", "fig", "apple", "kiwi", "date"}
	require.NoError(t, NthElementInterface(sort.Reverse(sort.StringSlice(words)), 0))
	assert.Equal(t, "pear", words[0])
}

func BenchmarkNthElement(b *testing.B) {
	sizes := []int{100, 1000, 100000}
	for _, size := range sizes {
		b.Run("size="+strconv.Itoa(size), func(b *testing.B) {
			original := rand.New(rand.NewSource(int64(size))).Perm(size)
			items := make([]int, size)

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(items, original)
				_ = NthElement(items, size/2)
			}
		})
	}
}

func BenchmarkSortThenIndex(b *testing.B) {
	sizes := []int{100, 1000, 100000}
	for _, size := range sizes {
		b.Run("size="+strconv.Itoa(size), func(b *testing.B) {
			original := rand.New(rand.NewSource(int64(size))).Perm(size)
			items := make([]int, size)

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(items, original)
				slices.Sort(items)
			}
		})
	}
}
