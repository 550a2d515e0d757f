package trace

import (
	"fmt"
	"unsafe"

	"github.com/hanahabibi/malloclab/allocator"
)

// Result summarizes a completed Replay.
type Result struct {
	OpsApplied int
	Peak       allocator.Stats
	Final      allocator.CheckReport
}

// Replay applies ops to h in order, maintaining an id -> payload table the
// way a malloc trace driver must: "a" and "r" record the returned pointer
// under id, "f" looks it up and forgets it. It runs a full allocator/checker
// pass only once, after the last op.
func Replay(h *allocator.Heap, ops []Op) (Result, error) {
	return replay(h, ops, false)
}

// ReplayChecked behaves like Replay but also runs allocator/checker after
// every op, mirroring mm.c's commented-out mm_check() call after every
// coalesce, and stops at the first violation.
func ReplayChecked(h *allocator.Heap, ops []Op) (Result, error) {
	return replay(h, ops, true)
}

func replay(h *allocator.Heap, ops []Op, checkEach bool) (Result, error) {
	live := make(map[int]unsafe.Pointer)
	var res Result

	for i, op := range ops {
		switch op.Kind {
		case OpAlloc:
			p, err := h.Allocate(op.Size)
			if err != nil {
				return res, fmt.Errorf("trace: op %d (alloc id=%d, size=%d): %w", i, op.ID, op.Size, err)
			}
			live[op.ID] = p

		case OpFree:
			p, ok := live[op.ID]
			if !ok {
				return res, fmt.Errorf("trace: op %d (free id=%d): id was never allocated", i, op.ID)
			}
			h.Release(p)
			delete(live, op.ID)

		case OpRealloc:
			p := live[op.ID] // nil if unseen; Reallocate(nil, ...) behaves like Allocate
			np, err := h.Reallocate(p, op.Size)
			if err != nil {
				return res, fmt.Errorf("trace: op %d (realloc id=%d, size=%d): %w", i, op.ID, op.Size, err)
			}
			if np == nil {
				delete(live, op.ID)
			} else {
				live[op.ID] = np
			}

		default:
			return res, fmt.Errorf("trace: op %d: unknown op kind %v", i, op.Kind)
		}

		res.OpsApplied++
		if u := h.Utilization(); u.Allocated > res.Peak.Allocated {
			res.Peak = u
		}

		if checkEach {
			if rep := allocator.Check(h); !rep.OK() {
				res.Final = rep
				return res, fmt.Errorf("trace: op %d (%s id=%d): heap check failed: %w", i, op.Kind, op.ID, rep.Err())
			}
		}
	}

	res.Final = allocator.Check(h)
	return res, nil
}
