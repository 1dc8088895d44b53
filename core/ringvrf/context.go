// Copyright 2025 The jamcrypto Authors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ringvrf

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/hashicorp/golang-lru/v2/simplelru"

	"github.com/boymaas/jamcrypto/core/crypto/ringproof"
	"github.com/boymaas/jamcrypto/core/crypto/srs"
)

const (
	// MaxRingSize is the largest ring the backend supports with the
	// embedded reference string.
	MaxRingSize = 1023
	// ContextCacheCapacity bounds the number of distinct ring sizes whose
	// contexts are retained.
	ContextCacheCapacity = 10
)

// RingContext bundles the proving and verifying material sized to one ring
// cardinality. It is fully determined by the ring size and the fixed
// reference string, immutable once derived, and safe to share.
type RingContext struct {
	ringSize int
	params   *ringproof.Params
}

func deriveRingContext(pcs *srs.PcsParams, ringSize int) (*RingContext, error) {
	if ringSize < 1 || ringSize > MaxRingSize {
		return nil, fmt.Errorf("%w: %d", ErrRingSize, ringSize)
	}
	params, err := ringproof.NewParams(pcs.SRS, ringSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRingSize, err)
	}
	return &RingContext{ringSize: ringSize, params: params}, nil
}

// RingSize returns the ring cardinality this context serves.
func (c *RingContext) RingSize() int {
	return c.ringSize
}

// ContextCache maps ring sizes to derived contexts with a bounded capacity
// and least-recently-used eviction. All accesses serialize through a single
// critical section; the mutex is held across derivation, so a cold ring size
// is never derived twice concurrently.
type ContextCache struct {
	mu  sync.Mutex
	lru *simplelru.LRU[int, *RingContext]
	pcs *srs.PcsParams
}

// NewContextCache builds a cache over the given reference-string parameters.
func NewContextCache(pcs *srs.PcsParams, capacity int) *ContextCache {
	l, err := simplelru.NewLRU[int, *RingContext](capacity, nil)
	if err != nil {
		panic(fmt.Sprintf("ringvrf: bad cache capacity %d: %v", capacity, err))
	}
	return &ContextCache{lru: l, pcs: pcs}
}

// GetOrCreate returns the context for a ring size, deriving and caching it
// on first use. A hit promotes the entry's recency.
func (c *ContextCache) GetOrCreate(ringSize int) (*RingContext, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ctx, ok := c.lru.Get(ringSize); ok {
		return ctx, nil
	}
	start := time.Now()
	ctx, err := deriveRingContext(c.pcs, ringSize)
	if err != nil {
		return nil, err
	}
	c.lru.Add(ringSize, ctx)
	glog.V(1).Infof("derived ring context for size %d in %v", ringSize, time.Since(start))
	return ctx, nil
}

var (
	defaultCacheOnce sync.Once
	defaultCache     *ContextCache
)

// DefaultCache returns the process-wide context cache over the embedded
// reference string, constructing both on first use.
func DefaultCache() *ContextCache {
	defaultCacheOnce.Do(func() {
		defaultCache = NewContextCache(srs.Load(), ContextCacheCapacity)
	})
	return defaultCache
}
