package passcomp

import (
	"bytes"
	"context"
	"io"

	"golang.org/x/sync/errgroup"
)

// ParallelGenerate is the opt-in concurrent generation path §5 allows:
// "implementations that parallelize the generator must chunk the index
// space of the leftmost unconstrained slot and reassemble output in the
// canonical order; no correctness guarantee is weakened."
//
// It splits the leftmost slot's counter range into up to workers
// contiguous chunks, runs one Generator per chunk concurrently, buffers
// each chunk's output, then writes the buffers to w in chunk order -- byte
// for byte identical to a single-threaded Generator.WriteAll over the same
// inputs.
func ParallelGenerate(ctx context.Context, slots []SlotProducer, minLen, maxLen *int, workers int, w io.Writer) error {
	if len(slots) == 0 || workers <= 1 {
		g, err := NewGenerator(slots, minLen, maxLen)
		if err != nil {
			return err
		}
		return g.WriteAll(w)
	}

	if err := validateBounds(slots, minLen, maxLen); err != nil {
		return err
	}

	leftSize := slots[0].Size()
	if leftSize == 0 {
		return nil
	}
	if uint64(workers) > leftSize {
		workers = int(leftSize)
	}
	if workers <= 1 {
		g, err := NewGenerator(slots, minLen, maxLen)
		if err != nil {
			return err
		}
		return g.WriteAll(w)
	}

	chunks := make([]bytes.Buffer, workers)
	eg, egCtx := errgroup.WithContext(ctx)

	base := leftSize / uint64(workers)
	rem := leftSize % uint64(workers)
	var lo uint64
	for c := 0; c < workers; c++ {
		size := base
		if uint64(c) < rem {
			size++
		}
		hi := lo + size
		idx, startIdx, endIdx := c, lo, hi
		eg.Go(func() error {
			select {
			case <-egCtx.Done():
				return egCtx.Err()
			default:
			}
			sub, err := newGeneratorRange(slots, minLen, maxLen, startIdx, endIdx)
			if err != nil {
				return err
			}
			return sub.WriteAll(&chunks[idx])
		})
		lo = hi
	}

	if err := eg.Wait(); err != nil {
		return err
	}

	for i := range chunks {
		if err := writeFull(w, chunks[i].Bytes()); err != nil {
			return ioErrorf(err, "writing parallel generator chunk %d", i)
		}
	}
	return nil
}

