// SPDX-License-Identifier: EPL-2.0

package blockbuf

import "iter"

// Blocks returns an iterator that drains the buffer one block at a time,
// ending when fewer than BlockSize frames remain. It is sugar over repeated
// Get calls: the iterator shares the buffer's read cursor, so it is not
// restartable, and resuming after more Extend calls simply picks up where
// the cursor stands. Each yielded slice obeys the Get validity window.
func (b *Buffer[T]) Blocks() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for {
			block := b.Get()
			if block == nil {
				return
			}
			if !yield(block) {
				return
			}
		}
	}
}
