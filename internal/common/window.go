package common

import (
	"fmt"
)

// BlockWindow is an inclusive range of block numbers scanned as one unit of work.
type BlockWindow struct {
	FromBlock uint64
	ToBlock   uint64
}

func (w BlockWindow) String() string {
	return fmt.Sprintf("[%d, %d]", w.FromBlock, w.ToBlock)
}

// Size returns the number of blocks in the window.
func (w BlockWindow) Size() uint64 {
	return w.ToBlock - w.FromBlock + 1
}

// Partition splits [start, end] into ascending, contiguous windows of at most step blocks.
// The last window may be shorter. start > end yields no windows.
func Partition(start, end uint64, step int64) ([]BlockWindow, error) {
	if step <= 0 {
		return nil, fmt.Errorf("%w: window size must be positive, got %d", ErrInvalidArgument, step)
	}
	if start > end {
		return []BlockWindow{}, nil
	}

	size := uint64(step)
	windows := make([]BlockWindow, 0, (end-start)/size+1)
	for from := start; ; {
		to := end
		if end-from >= size {
			to = from + size - 1
		}
		windows = append(windows, BlockWindow{FromBlock: from, ToBlock: to})
		if to == end {
			break
		}
		from = to + 1
	}
	return windows, nil
}
