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
	"fmt"

	"github.com/orderstat/floydrivest-go/common"
	"github.com/orderstat/floydrivest-go/internal"
)

// Buckets rearranges items into consecutive buckets of bucketSize items such
// that every item of a bucket compares <= every item of the following bucket.
// The last bucket may be shorter. Each bucket boundary i*bucketSize holds the
// item of that rank in sorted order.
func Buckets[T any](items []T, bucketSize int, compare common.CompareFn[T]) error {
	if bucketSize < 1 {
		return fmt.Errorf("%w: bucket size must be positive: %d", ErrInvalidRange, bucketSize)
	}
	if compare == nil {
		return ErrNilCompare
	}
	if len(items) <= bucketSize {
		return nil
	}
	// pending half-open windows [lo, hi) whose buckets are not yet separated
	stack := []int{0, len(items)}
	for len(stack) > 0 {
		hi := stack[len(stack)-1]
		lo := stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		if hi-lo <= bucketSize {
			continue
		}
		numBuckets := (hi - lo + bucketSize - 1) / bucketSize
		mid := lo + (numBuckets/2)*bucketSize
		internal.FloydRivestFunc(items, lo, hi-1, mid, compare)
		stack = append(stack, lo, mid, mid, hi)
	}
	return nil
}
