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

package quantiles

import (
	"fmt"

	"github.com/orderstat/floydrivest-go/common"
)

// Partitions splits a slice into parts of nearly equal size.
type Partitions[T any] struct {
	boundaries []T     //items at the boundaries, min and max included
	natRanks   []int64 //natural ranks of the boundaries
	normRanks  []float64
	//computed
	numDeltaItems []int64 //num of items in each part, index 0 unused
	numPartitions int
}

// PartitionBoundaries selects numParts+1 boundary items of items: the minimum,
// the inclusive quantiles of ranks i/numParts, and the maximum. Part i holds
// the items at sorted positions natRanks[i-1]+1 through natRanks[i]; the first
// part also holds the minimum.
func PartitionBoundaries[T any](items []T, numParts int, compare common.CompareFn[T]) (*Partitions[T], error) {
	if len(items) == 0 {
		return nil, ErrEmpty
	}
	if numParts < 1 || numParts > len(items) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidParts, numParts)
	}
	n := len(items)
	normRanks := make([]float64, numParts+1)
	indices := make([]int, numParts+1)
	for i := range normRanks {
		normRanks[i] = float64(i) / float64(numParts)
		indices[i] = quantileIndex(normRanks[i], n, true)
	}
	if err := selectIndices(items, indices, compare); err != nil {
		return nil, err
	}
	boundaries := make([]T, numParts+1)
	natRanks := make([]int64, numParts+1)
	for i, index := range indices {
		boundaries[i] = items[index]
		natRanks[i] = int64(index + 1)
	}
	numDeltaItems := make([]int64, numParts+1)
	for i := 1; i <= numParts; i++ {
		numDeltaItems[i] = natRanks[i] - natRanks[i-1]
		if i == 1 {
			numDeltaItems[i]++
		}
	}
	return &Partitions[T]{
		boundaries:    boundaries,
		natRanks:      natRanks,
		normRanks:     normRanks,
		numDeltaItems: numDeltaItems,
		numPartitions: numParts,
	}, nil
}

func (p *Partitions[T]) Boundaries() []T {
	return p.boundaries
}

func (p *Partitions[T]) NaturalRanks() []int64 {
	return p.natRanks
}

func (p *Partitions[T]) NormalizedRanks() []float64 {
	return p.normRanks
}

// NumDeltaItems returns the number of items in each part; index 0 is always 0.
func (p *Partitions[T]) NumDeltaItems() []int64 {
	return p.numDeltaItems
}

func (p *Partitions[T]) NumPartitions() int {
	return p.numPartitions
}
