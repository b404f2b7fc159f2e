// Package geofence tests whether a coordinate lies inside an area described
// by an encoded polyline ring.
package geofence

import (
	"sync"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"googlemaps.github.io/maps"

	"explore/internal/types"
)

// Fence is a named boundary in encoded polyline form.
type Fence struct {
	Name     string
	Encoding string
}

// Contains reports whether p lies in the fence, boundary included.
func (f Fence) Contains(p types.Point) bool {
	return Contains(p, f.Encoding)
}

// rings memoizes decoded boundaries for the life of the process. Entries are
// never mutated after insertion.
var rings sync.Map // encoding -> orb.Ring (nil when undecodable)

// Contains reports whether p lies inside or on the ring described by
// encoding. Encodings that fail to decode, or decode to fewer than three
// points, contain nothing.
func Contains(p types.Point, encoding string) bool {
	ring := decode(encoding)
	if ring == nil {
		return false
	}
	return planar.RingContains(ring, orb.Point{p.Lng, p.Lat})
}

// ContainsAny reports whether p lies in at least one of fences.
func ContainsAny(p types.Point, fences ...Fence) bool {
	for _, f := range fences {
		if f.Contains(p) {
			return true
		}
	}
	return false
}

func decode(encoding string) orb.Ring {
	if v, ok := rings.Load(encoding); ok {
		return v.(orb.Ring)
	}
	ring := decodeRing(encoding)
	v, _ := rings.LoadOrStore(encoding, ring)
	return v.(orb.Ring)
}

func decodeRing(encoding string) orb.Ring {
	if encoding == "" {
		return nil
	}
	path, err := maps.DecodePolyline(encoding)
	if err != nil || len(path) < 3 {
		return nil
	}
	ring := make(orb.Ring, 0, len(path)+1)
	for _, ll := range path {
		ring = append(ring, orb.Point{ll.Lng, ll.Lat})
	}
	if !ring.Closed() {
		ring = append(ring, ring[0])
	}
	return ring
}
