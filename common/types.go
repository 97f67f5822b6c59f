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

package common

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// CompareFn is a three-way comparison. It returns a negative number when a
// sorts before b, zero when they are equivalent and a positive number otherwise.
type CompareFn[T any] func(a, b T) int

// LessFn reports whether a sorts strictly before b.
type LessFn[T any] func(a, b T) bool

// FromLess builds a CompareFn out of a strict weak ordering.
func FromLess[T any](less LessFn[T]) CompareFn[T] {
	return func(a, b T) int {
		if less(a, b) {
			return -1
		}
		if less(b, a) {
			return 1
		}
		return 0
	}
}

// Reverse inverts the order of compare.
func Reverse[T any](compare CompareFn[T]) CompareFn[T] {
	return func(a, b T) int {
		return compare(b, a)
	}
}

// CompareOrdered is the natural order of T. NaN sorts before every other float.
func CompareOrdered[T constraints.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

// CompareBy orders items by a derived key.
func CompareBy[T any, K constraints.Ordered](key func(T) K) CompareFn[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}
