package detect

import "context"

// GeoIPDetector is a reserved, lowest-priority signal source based on IP
// geolocation. It is intentionally a no-op: the pipeline keeps a slot
// for it so a future implementation only has to fill in Detect.
type GeoIPDetector struct{}

// NewGeoIPDetector creates the placeholder detector.
func NewGeoIPDetector() *GeoIPDetector {
	return &GeoIPDetector{}
}

// Name identifies the source in the trace.
func (d *GeoIPDetector) Name() string {
	return "geoip"
}

// Detect always reports no signal.
func (d *GeoIPDetector) Detect(_ context.Context) Detection {
	return noSignal("IP geolocation not implemented")
}
