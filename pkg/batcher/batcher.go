// Package batcher splits ordered work into contiguous batches.
package batcher

// Range is an inclusive span of block heights.
type Range struct {
	From uint64
	To   uint64
}

// Len returns the number of heights in the range.
func (r Range) Len() uint64 {
	return r.To - r.From + 1
}

// Heights lists every height of the range in ascending order.
func (r Range) Heights() []uint64 {
	heights := make([]uint64, 0, r.Len())
	for h := r.From; ; h++ {
		heights = append(heights, h)
		if h == r.To {
			break
		}
	}
	return heights
}

// Ranges partitions [from, to] into consecutive ranges of at most size heights.
// The last range may be shorter.
func Ranges(from, to, size uint64) []Range {
	if size == 0 || from > to {
		return nil
	}

	ranges := make([]Range, 0, (to-from)/size+1)
	for start := from; ; {
		end := start + size - 1
		if end < start || end > to {
			end = to
		}
		ranges = append(ranges, Range{From: start, To: end})
		if end == to {
			return ranges
		}
		start = end + 1
	}
}

// Chunk splits items into contiguous slices of at most size elements, preserving order.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return nil
	}

	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end:end])
	}
	return chunks
}
