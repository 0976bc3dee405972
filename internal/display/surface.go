package display

import (
	"errors"
	"fmt"
	"sync"
)

var ErrRegionNotFound = errors.New("display region not found")

// Surface is anything with addressable regions whose content can be replaced.
type Surface interface {
	SetContent(regionID, markup string) error
}

// Document is an in-memory Surface. Regions must be declared up front.
type Document struct {
	mu      sync.RWMutex
	regions map[string]string
}

// NewDocument creates a document with the given empty regions.
func NewDocument(regionIDs ...string) *Document {
	d := &Document{regions: make(map[string]string, len(regionIDs))}
	for _, id := range regionIDs {
		d.regions[id] = ""
	}
	return d
}

// SetContent overwrites the whole content of a region.
func (d *Document) SetContent(regionID, markup string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.regions[regionID]; !ok {
		return fmt.Errorf("%w: %q", ErrRegionNotFound, regionID)
	}
	d.regions[regionID] = markup
	return nil
}

// Content returns the current content of a region.
func (d *Document) Content(regionID string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	markup, ok := d.regions[regionID]
	return markup, ok
}
