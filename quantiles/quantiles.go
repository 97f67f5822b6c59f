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

// Package quantiles answers exact rank queries over an in-memory slice by
// partial selection instead of a full sort. Every function reorders its input.
//
// Ranks are normalized to [0, 1]. With inclusive search the quantile of rank r
// is the smallest item q such that at least r*n items are <= q. With exclusive
// search it is the smallest item q such that more than r*n items are <= q.
package quantiles

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/orderstat/floydrivest-go/common"
	"github.com/orderstat/floydrivest-go/selection"
	"golang.org/x/exp/constraints"
)

const tailRoundingFactor = 1e7

var (
	ErrEmpty        = errors.New("operation is undefined for an empty slice")
	ErrInvalidRank  = errors.New("normalized rank must be between 0 and 1 inclusive")
	ErrInvalidK     = errors.New("k must be between 0 and the number of items")
	ErrInvalidParts = errors.New("number of partitions must be between 1 and the number of items")
)

// Number is the set of types Interpolated can average.
type Number interface {
	constraints.Integer | constraints.Float
}

// Quantile returns the item at the given normalized rank.
func Quantile[T any](items []T, rank float64, inclusive bool, compare common.CompareFn[T]) (T, error) {
	if len(items) == 0 {
		return *new(T), ErrEmpty
	}
	if err := checkNormalizedRankBounds(rank); err != nil {
		return *new(T), err
	}
	index := quantileIndex(rank, len(items), inclusive)
	if err := selection.NthElementFunc(items, index, compare); err != nil {
		return *new(T), err
	}
	return items[index], nil
}

// Quantiles returns the items at the given normalized ranks, in the order of ranks.
func Quantiles[T any](items []T, ranks []float64, inclusive bool, compare common.CompareFn[T]) ([]T, error) {
	if len(items) == 0 {
		return nil, ErrEmpty
	}
	indices := make([]int, len(ranks))
	for i, rank := range ranks {
		if err := checkNormalizedRankBounds(rank); err != nil {
			return nil, err
		}
		indices[i] = quantileIndex(rank, len(items), inclusive)
	}
	if err := selectIndices(items, indices, compare); err != nil {
		return nil, err
	}
	result := make([]T, len(indices))
	for i, index := range indices {
		result[i] = items[index]
	}
	return result, nil
}

// Median returns the lower median of items.
func Median[T any](items []T, compare common.CompareFn[T]) (T, error) {
	if len(items) == 0 {
		return *new(T), ErrEmpty
	}
	index := (len(items) - 1) / 2
	if err := selection.NthElementFunc(items, index, compare); err != nil {
		return *new(T), err
	}
	return items[index], nil
}

// Interpolated returns the q-quantile of items, linearly interpolated between
// the two items around position q*(n-1) of the sorted order.
func Interpolated[T Number](items []T, q float64) (float64, error) {
	if len(items) == 0 {
		return 0, ErrEmpty
	}
	if err := checkNormalizedRankBounds(q); err != nil {
		return 0, err
	}
	pos := q * float64(len(items)-1)
	lower := int(math.Floor(pos))
	if err := selection.NthElement(items, lower); err != nil {
		return 0, err
	}
	fraction := pos - float64(lower)
	if fraction == 0 || lower == len(items)-1 {
		return float64(items[lower]), nil
	}
	// everything right of lower is >= items[lower], so the next order
	// statistic is the minimum of that side
	upper := slices.Min(items[lower+1:])
	return float64(items[lower]) + fraction*(float64(upper)-float64(items[lower])), nil
}

// selectIndices places the order statistic of every index into position.
// Each selection only needs the window right of the previous index.
func selectIndices[T any](items []T, indices []int, compare common.CompareFn[T]) error {
	if compare == nil {
		return selection.ErrNilCompare
	}
	ordered := slices.Clone(indices)
	slices.Sort(ordered)
	ordered = slices.Compact(ordered)
	left := 0
	for _, index := range ordered {
		if err := selection.NthElementRangeFunc(items, left, len(items)-1, index, compare); err != nil {
			return err
		}
		left = index + 1
	}
	return nil
}

func quantileIndex(rank float64, n int, inclusive bool) int {
	naturalRank := getNaturalRank(rank, n, inclusive)
	index := naturalRank
	if inclusive {
		index = naturalRank - 1
	}
	return min(max(index, 0), n-1)
}

func getNaturalRank(normalizedRank float64, n int, inclusive bool) int {
	naturalRank := normalizedRank * float64(n)
	if n <= tailRoundingFactor {
		naturalRank = math.Round(naturalRank*tailRoundingFactor) / tailRoundingFactor
	}
	if inclusive {
		return int(math.Ceil(naturalRank))
	}
	return int(math.Floor(naturalRank))
}

func checkNormalizedRankBounds(rank float64) error {
	if !(rank >= 0 && rank <= 1) {
		return fmt.Errorf("%w: %f", ErrInvalidRank, rank)
	}
	return nil
}
