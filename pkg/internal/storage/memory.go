package storage

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// MemoryDriver keeps objects in a map. It backs the "memory" storage driver
// used by tests and local development.
type MemoryDriver struct {
	mu      sync.RWMutex
	objects map[string][]byte

	// FailPuts and FailDeletes simulate a storage outage.
	FailPuts    bool
	FailDeletes bool
}

func NewMemoryDriver() *MemoryDriver {
	return &MemoryDriver{objects: make(map[string][]byte)}
}

func (d *MemoryDriver) key(bucket, path string) string {
	return bucket + "/" + path
}

func (d *MemoryDriver) Put(_ context.Context, bucket, path string, src io.Reader, _ string) error {
	if d.FailPuts {
		return fmt.Errorf("memory driver: puts are failing")
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.objects[d.key(bucket, path)] = data
	return nil
}

func (d *MemoryDriver) Delete(_ context.Context, bucket, path string) error {
	if d.FailDeletes {
		return fmt.Errorf("memory driver: deletes are failing")
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.objects, d.key(bucket, path))
	return nil
}

func (d *MemoryDriver) Has(bucket, path string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.objects[d.key(bucket, path)]
	return ok
}

func (d *MemoryDriver) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.objects)
}
