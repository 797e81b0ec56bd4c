package locations

import (
	"os"

	"gopkg.in/yaml.v3"

	"sanayi_portal_backend/platform/apperr"
	"sanayi_portal_backend/platform/logger"
)

// Service serves the static location tables loaded at startup.
type Service struct {
	table Table
	byID  map[string]Location
	log   *logger.Logger
}

// NewService loads the YAML location file. A missing or malformed file
// degrades to empty tables with a logged diagnostic.
func NewService(path string, log *logger.Logger) *Service {
	s := &Service{
		byID: make(map[string]Location),
		log:  log,
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.DatasetError(path, err)
		return s
	}
	if err := yaml.Unmarshal(raw, &s.table); err != nil {
		log.DatasetError(path, err)
		s.table = Table{}
		return s
	}

	for _, group := range [][]Location{s.table.Ports, s.table.Stations, s.table.Offices} {
		for _, loc := range group {
			s.byID[loc.ID] = loc
		}
	}
	log.DatasetLoaded(path, len(s.byID))

	return s
}

// All returns every location group.
func (s *Service) All() Table {
	return s.table
}

// Group returns one named location group.
func (s *Service) Group(name string) ([]Location, error) {
	switch name {
	case "ports":
		return s.table.Ports, nil
	case "stations":
		return s.table.Stations, nil
	case "offices":
		return s.table.Offices, nil
	default:
		return nil, apperr.NotFound("unknown location group")
	}
}

// ByID returns one location by its identifier.
func (s *Service) ByID(id string) (Location, error) {
	loc, ok := s.byID[id]
	if !ok {
		return Location{}, apperr.NotFound("unknown location")
	}
	return loc, nil
}
