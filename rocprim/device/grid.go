// Copyright 2025 The rocPRIM Go Authors
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

package device

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// gridPool is a persistent worker pool shared by every kernel launch in the
// process. Workers are spawned once and reused, so a launch costs a handful
// of channel sends rather than goroutine spawns.
type gridPool struct {
	numWorkers int
	workC      chan gridWork
}

type gridWork struct {
	fn      func()
	barrier *sync.WaitGroup
}

var (
	poolOnce sync.Once
	pool     *gridPool
)

func sharedPool() *gridPool {
	poolOnce.Do(func() {
		n := runtime.GOMAXPROCS(0)
		p := &gridPool{
			numWorkers: n,
			workC:      make(chan gridWork, n*2),
		}
		for range n {
			go p.worker()
		}
		pool = p
	})
	return pool
}

func (p *gridPool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// launchGrid runs blockFn for every block id in [0, numBlocks) on at most
// maxWorkers pool workers. Workers claim block ids from ticket in ascending
// order, so at any moment the smallest unfinished block is held by a running
// worker. The single-pass kernels depend on this: a block spinning on its
// predecessors' results can always make progress, whatever the worker count.
//
// If ticket is nil a launch-local counter is used.
func launchGrid(maxWorkers, numBlocks int, ticket *atomic.Uint64, blockFn func(block int)) {
	if numBlocks <= 0 {
		return
	}
	var local atomic.Uint64
	if ticket == nil {
		ticket = &local
	}

	p := sharedPool()
	workers := min(maxWorkers, p.numWorkers, numBlocks)
	if workers <= 1 {
		for b := range numBlocks {
			blockFn(b)
		}
		return
	}

	run := func() {
		for {
			b := int(ticket.Add(1)) - 1
			if b >= numBlocks {
				return
			}
			blockFn(b)
		}
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- gridWork{fn: run, barrier: &wg}
	}
	wg.Wait()
}
