package sc

import (
	"sync/atomic"
	"time"
)

// nodeAllocator hands out server node IDs. The base is derived from the
// clock so that successive bridge processes talking to a long-lived server
// land in different ID ranges; within a process the counter is strictly
// monotonic, so IDs never collide.
type nodeAllocator struct {
	next atomic.Int64
}

func newNodeAllocator() *nodeAllocator {
	a := &nodeAllocator{}
	a.next.Store(time.Now().UnixMilli()%100000 + 1000)
	return a
}

func (a *nodeAllocator) Next() int32 {
	return int32(a.next.Add(1))
}
