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
	"github.com/orderstat/floydrivest-go/selection"
)

// BottomK moves the k smallest items to the front of items and returns them
// as items[:k], in no particular order.
func BottomK[T any](items []T, k int, compare common.CompareFn[T]) ([]T, error) {
	if compare == nil {
		return nil, selection.ErrNilCompare
	}
	if k < 0 || k > len(items) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidK, k)
	}
	if k == 0 || k == len(items) {
		return items[:k], nil
	}
	if err := selection.NthElementFunc(items, k-1, compare); err != nil {
		return nil, err
	}
	return items[:k], nil
}

// TopK moves the k largest items to the front of items and returns them
// as items[:k], in no particular order.
func TopK[T any](items []T, k int, compare common.CompareFn[T]) ([]T, error) {
	if compare == nil {
		return nil, selection.ErrNilCompare
	}
	return BottomK(items, k, common.Reverse(compare))
}
