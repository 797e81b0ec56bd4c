package locations

// Location is one point of interest shown on the interactive map: a port,
// a train station or a brand sales office. Coordinates and distances are
// hand-tuned configuration data, not computed.
type Location struct {
	ID         string  `yaml:"id" json:"id"`
	Name       string  `yaml:"name" json:"name"`
	Lat        float64 `yaml:"lat" json:"lat"`
	Lng        float64 `yaml:"lng" json:"lng"`
	DistanceKM float64 `yaml:"distanceKm" json:"distanceKm"`
	Note       string  `yaml:"note,omitempty" json:"note,omitempty"`
}

// Table is the full static location configuration, grouped by kind.
type Table struct {
	Ports    []Location `yaml:"ports" json:"ports"`
	Stations []Location `yaml:"stations" json:"stations"`
	Offices  []Location `yaml:"offices" json:"offices"`
}
