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

package internal

import (
	"math"
	"sort"
)

const (
	// SampleThreshold is the window width above which the window is first
	// narrowed by selecting on a sample. Below it a plain partition pass is cheaper.
	SampleThreshold = 600

	sampleScale    = 0.5
	sampleExponent = 2.0 / 3.0
	deviationScale = 0.5
)

// SampleBounds returns the sub-window [ll, rr] of [left, right] that is
// expected to contain the k-th smallest item of the window, biased so the
// item lands on the small side after the next partition pass. Both bounds are
// truncated toward zero and clamped into [left, right].
func SampleBounds(left, right, k int) (int, int) {
	n := float64(right - left + 1)
	i := float64(k - left + 1)
	z := math.Log(n)
	s := sampleScale * math.Exp(sampleExponent*z)
	sd := deviationScale * math.Sqrt(z*s*(n-s)/n)
	if i-n/2 < 0 {
		sd = -sd
	}
	kf := float64(k)
	ll := max(left, int(kf-i*s/n+sd))
	rr := min(right, int(kf+(n-i)*s/n+sd))
	return ll, rr
}

// FloydRivestFunc moves the k-th smallest item of arr[left:right+1] to arr[k]
// and partitions the window around it. The caller guarantees
// 0 <= left <= k <= right < len(arr).
//
// The scan has no bounds checks; a compare that is not a total order can
// drive it outside the window.
func FloydRivestFunc[T any](arr []T, left int, right int, k int, compare func(a, b T) int) {
	for right > left {
		if right-left > SampleThreshold {
			ll, rr := SampleBounds(left, right, k)
			FloydRivestFunc(arr, ll, rr, k, compare)
		}
		j := partitionFunc(arr, left, right, k, compare)
		if j <= k {
			left = j + 1
		}
		if k <= j {
			right = j - 1
		}
	}
}

// partitionFunc splits arr[left:right+1] around the value at k and returns the
// final index of that value.
func partitionFunc[T any](arr []T, left int, right int, k int, compare func(a, b T) int) int {
	t := arr[k]
	i := left
	j := right
	arr[left], arr[k] = arr[k], arr[left]
	if compare(arr[right], t) > 0 {
		arr[left], arr[right] = arr[right], arr[left]
	}
	for i < j {
		arr[i], arr[j] = arr[j], arr[i]
		i++
		j--
		for compare(arr[i], t) < 0 {
			i++
		}
		for compare(arr[j], t) > 0 {
			j--
		}
	}
	if compare(arr[left], t) == 0 {
		arr[left], arr[j] = arr[j], arr[left]
	} else {
		j++
		arr[j], arr[right] = arr[right], arr[j]
	}
	return j
}

// FloydRivestInterface is FloydRivestFunc over a sort.Interface. The pivot
// cannot be copied out, so it is tracked by index instead.
func FloydRivestInterface(data sort.Interface, left int, right int, k int) {
	for right > left {
		if right-left > SampleThreshold {
			ll, rr := SampleBounds(left, right, k)
			FloydRivestInterface(data, ll, rr, k)
		}
		j := partitionInterface(data, left, right, k)
		if j <= k {
			left = j + 1
		}
		if k <= j {
			right = j - 1
		}
	}
}

func partitionInterface(data sort.Interface, left int, right int, k int) int {
	i := left
	j := right
	data.Swap(left, k)
	// the first swap of the scan moves the pivot to whichever end it is not
	// on now, and no later swap touches either end
	pivot := right
	if data.Less(left, right) {
		data.Swap(left, right)
		pivot = left
	}
	for i < j {
		data.Swap(i, j)
		i++
		j--
		for data.Less(i, pivot) {
			i++
		}
		for data.Less(pivot, j) {
			j--
		}
	}
	if !data.Less(left, pivot) && !data.Less(pivot, left) {
		data.Swap(left, j)
	} else {
		j++
		data.Swap(j, right)
	}
	return j
}
