package vignetting

import (
	"runtime"
	"sync"
)

// SetVignettingParallel computes vignetting factors for all fields using a
// pool of workers. Each per-field search reads the same immutable surface
// sequence and writes only its own field, so fields can be distributed
// freely; the tracer must be safe for concurrent use.
//
// numWorkers <= 0 uses the CPU count.
func (c *Calculator) SetVignettingParallel(numWorkers int) {
	fields := c.system.Fields()
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > len(fields) {
		numWorkers = len(fields)
	}

	tasks := make(chan int, len(fields))
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for fi := range tasks {
				c.CalcVignettingForField(fields[fi], c.system.Wavelength(fi))
			}
		}()
	}

	for fi := range fields {
		tasks <- fi
	}
	close(tasks)
	wg.Wait()
}
