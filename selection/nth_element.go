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

// Package selection moves the k-th smallest item of a slice into position k
// and partitions the slice around it, in expected linear time, using the
// Floyd-Rivest algorithm.
//
// Only position k is guaranteed to hold its sorted value. The items before it
// compare less than or equal to it, the items after it greater than or equal,
// and both sides are otherwise left unordered.
//
// The working window is narrowed by recursive selection on a sample before
// every partition pass. The expected recursion depth is logarithmic in the
// window size; a comparator that clusters adversarially can push it towards
// linear, and no explicit depth limit is applied.
package selection

import (
	"errors"
	"fmt"
	"sort"

	"github.com/orderstat/floydrivest-go/common"
	"github.com/orderstat/floydrivest-go/internal"
	"golang.org/x/exp/constraints"
)

var (
	// ErrInvalidRange is returned for an empty slice or a rank or window
	// outside the slice. The slice is left untouched.
	ErrInvalidRange = errors.New("invalid range")
	ErrNilCompare   = errors.New("no compare function provided")
)

// NthElementFunc rearranges items so that items[k] holds the item that would
// be there if items were sorted by compare, every item before k compares <= it
// and every item after k compares >= it.
//
// compare must be a total order and give the same answer for the same pair
// for the whole call.
func NthElementFunc[T any](items []T, k int, compare common.CompareFn[T]) error {
	return NthElementRangeFunc(items, 0, len(items)-1, k, compare)
}

// NthElementRangeFunc is NthElementFunc restricted to the inclusive window
// items[left:right+1]. Items outside the window are not read or moved.
func NthElementRangeFunc[T any](items []T, left, right, k int, compare common.CompareFn[T]) error {
	if err := checkWindow(len(items), left, right, k); err != nil {
		return err
	}
	if compare == nil {
		return ErrNilCompare
	}
	internal.FloydRivestFunc(items, left, right, k, compare)
	return nil
}

// NthElement is NthElementFunc using the natural order of T.
// NaN values sort before every other float.
func NthElement[T constraints.Ordered](items []T, k int) error {
	return NthElementFunc(items, k, common.CompareOrdered[T])
}

// NthElementInterface is NthElementFunc over a sort.Interface.
func NthElementInterface(data sort.Interface, k int) error {
	n := data.Len()
	if err := checkWindow(n, 0, n-1, k); err != nil {
		return err
	}
	internal.FloydRivestInterface(data, 0, n-1, k)
	return nil
}

func checkWindow(length, left, right, k int) error {
	if length == 0 {
		return fmt.Errorf("%w: empty slice", ErrInvalidRange)
	}
	if left < 0 || right >= length || left > right {
		return fmt.Errorf("%w: window [%d, %d] outside [0, %d]", ErrInvalidRange, left, right, length-1)
	}
	if k < left || k > right {
		return fmt.Errorf("%w: rank %d outside window [%d, %d]", ErrInvalidRange, k, left, right)
	}
	return nil
}
