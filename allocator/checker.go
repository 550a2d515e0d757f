package allocator

import (
	"errors"
	"fmt"
)

// CheckReport is the result of an audit pass. A report with no violations
// is a clean bill of health; Violations is nil in that case.
type CheckReport struct {
	Violations []error
}

// OK reports whether the audit found no invariant violations.
func (rep CheckReport) OK() bool {
	return len(rep.Violations) == 0
}

// Err joins every violation into a single error, or returns nil if the
// report is clean.
func (rep CheckReport) Err() error {
	if rep.OK() {
		return nil
	}
	return errors.Join(rep.Violations...)
}

// Check audits a Heap's invariants (spec.md §4.6):
//
//  1. every block reachable via the free list is marked free
//  2. no two address-adjacent free blocks survive coalescing
//  3. every free block found by heap traversal is on the free list
//  4. every block's header and footer agree, so none can overlap its successor
//  5. every block header lies within the region and every payload is
//     8-byte aligned
//  6. every free block's header and footer agree
//
// Diagnostic output (the returned violations) is advisory: Check never
// mutates the heap and never attempts repair.
func Check(h *Heap) CheckReport {
	var rep CheckReport
	if !h.inited {
		rep.Violations = append(rep.Violations, ErrNotInitialized)
		return rep
	}

	r := h.region

	checkFreeListMarking(h, r, &rep)
	checkCoalescing(h, r, &rep)
	checkFreeListCompleteness(h, r, &rep)
	checkNoOverlap(h, r, &rep)
	checkBoundsAndAlignment(h, r, &rep)
	checkTagConsistency(h, r, &rep)

	return rep
}

func checkFreeListMarking(h *Heap, r RegionProvider, rep *CheckReport) {
	for bp := h.freeListp; bp != nullPtr; bp = nextFree(r, bp) {
		if blockAlloc(r, bp) {
			rep.Violations = append(rep.Violations,
				fmt.Errorf("checker: block at %#x is on the free list but marked allocated", bp))
		}
	}
}

func checkCoalescing(h *Heap, r RegionProvider, rep *CheckReport) {
	for bp := h.heapListp; hdr(bp) != h.epilogue; bp = nextBlock(r, bp) {
		if blockSize(r, bp) == 0 {
			break
		}
		if blockAlloc(r, bp) {
			continue
		}
		next := nextBlock(r, bp)
		if hdr(next) != h.epilogue && !blockAlloc(r, next) {
			rep.Violations = append(rep.Violations,
				fmt.Errorf("checker: adjacent free blocks at %#x and %#x escaped coalescing", bp, next))
		}
	}
}

func checkFreeListCompleteness(h *Heap, r RegionProvider, rep *CheckReport) {
	onList := make(map[uint32]bool)
	for bp := h.freeListp; bp != nullPtr; bp = nextFree(r, bp) {
		onList[bp] = true
	}

	for bp := h.heapListp; hdr(bp) != h.epilogue; bp = nextBlock(r, bp) {
		if blockSize(r, bp) == 0 {
			break
		}
		if !blockAlloc(r, bp) && !onList[bp] {
			rep.Violations = append(rep.Violations,
				fmt.Errorf("checker: free block at %#x is not present in the free list", bp))
		}
	}
}

// checkNoOverlap verifies every block's header and footer agree on its
// size and allocated bit. nextBlock derives the following block's address
// from the current header alone, so a footer left stale by a buggy
// place/coalesce goes unnoticed on a straightforward forward walk; but a
// later prevBlock call from the following block reads that footer and
// lands at the wrong address, possibly inside bytes another block owns.
func checkNoOverlap(h *Heap, r RegionProvider, rep *CheckReport) {
	for bp := h.heapListp; hdr(bp) != h.epilogue; bp = nextBlock(r, bp) {
		size := blockSize(r, bp)
		if size == 0 {
			break
		}
		headerWord := readWord(r, hdr(bp))
		footerWord := readWord(r, ftr(r, bp))
		if headerWord != footerWord {
			rep.Violations = append(rep.Violations,
				fmt.Errorf("checker: block at %#x header/footer disagree (header=%#x, footer=%#x); its true extent may overlap the next block", bp, headerWord, footerWord))
		}
	}
}

func checkBoundsAndAlignment(h *Heap, r RegionProvider, rep *CheckReport) {
	lo, hi := r.Lo(), r.Hi()
	for bp := h.heapListp; hdr(bp) != h.epilogue; bp = nextBlock(r, bp) {
		size := blockSize(r, bp)
		if size == 0 {
			break
		}
		headerAddr := hdr(bp)
		if headerAddr < lo || headerAddr >= hi {
			rep.Violations = append(rep.Violations,
				fmt.Errorf("checker: block header at %#x lies outside the region [%#x, %#x)", headerAddr, lo, hi))
		}
		// Payloads, not headers, are D-aligned (spec P1/P7): bp sits one
		// word past its header, so hdr(bp) is only ever W-aligned.
		if bp&(D-1) != 0 {
			rep.Violations = append(rep.Violations,
				fmt.Errorf("checker: block payload at %#x is not %d-byte aligned", bp, D))
		}
	}
}

func checkTagConsistency(h *Heap, r RegionProvider, rep *CheckReport) {
	for bp := h.freeListp; bp != nullPtr; bp = nextFree(r, bp) {
		headerWord := readWord(r, hdr(bp))
		footerWord := readWord(r, ftr(r, bp))
		if headerWord != footerWord {
			rep.Violations = append(rep.Violations,
				fmt.Errorf("checker: header/footer mismatch for free block at %#x (%#x != %#x)", bp, headerWord, footerWord))
		}
	}
}
