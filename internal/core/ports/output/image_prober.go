package ports

import "context"

// ImageProber reports whether uri can be fetched and decoded as an image.
// It never fails: unreachable, undecodable, empty or timed-out URIs are
// simply false.
type ImageProber interface {
	Probe(ctx context.Context, uri string) bool
}
