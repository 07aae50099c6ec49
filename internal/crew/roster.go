package crew

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/familiarcat/crewcoord/pkg/models"
)

// DefaultRoster returns the built-in crew roster. Every member starts the
// planning period at full availability.
func DefaultRoster() []*models.CrewMember {
	return []*models.CrewMember{
		{
			ID: "picard", Name: "Picard", Role: "Captain",
			Skills:          map[string]float64{"strategy": 98, "communication": 95, "documentation": 80},
			Specializations: []string{"strategy", "architecture"},
			Style:           models.StyleMentor,
			Availability:    100,
		},
		{
			ID: "riker", Name: "Riker", Role: "First Officer",
			Skills:          map[string]float64{"execution": 92, "strategy": 85, "communication": 88},
			Specializations: []string{"execution", "implementation"},
			Style:           models.StylePartner,
			Availability:    100,
		},
		{
			ID: "data", Name: "Data", Role: "Operations Officer",
			Skills:          map[string]float64{"ai-integration": 99, "machine-learning": 97, "backend": 92, "analysis": 99},
			Specializations: []string{"ai", "backend"},
			Style:           models.StyleSpecialist,
			Availability:    100,
		},
		{
			ID: "geordi", Name: "Geordi", Role: "Chief Engineer",
			Skills:          map[string]float64{"infrastructure": 96, "devops": 93, "backend": 85},
			Specializations: []string{"infrastructure", "engineering"},
			Style:           models.StyleSpecialist,
			Availability:    100,
		},
		{
			ID: "troi", Name: "Troi", Role: "Counselor",
			Skills:          map[string]float64{"ux": 94, "design": 90, "communication": 96},
			Specializations: []string{"ux", "design"},
			Style:           models.StyleMentor,
			Availability:    100,
		},
		{
			ID: "worf", Name: "Worf", Role: "Security Chief",
			Skills:          map[string]float64{"security": 97, "testing": 82},
			Specializations: []string{"security"},
			Style:           models.StyleSpecialist,
			Availability:    100,
		},
		{
			ID: "crusher", Name: "Crusher", Role: "Chief Medical Officer",
			Skills:          map[string]float64{"quality": 95, "testing": 90, "analysis": 88},
			Specializations: []string{"development", "quality"},
			Style:           models.StylePartner,
			Availability:    100,
		},
		{
			ID: "wesley", Name: "Wesley", Role: "Ensign",
			Skills:          map[string]float64{"frontend": 86, "api-design": 78, "testing": 70},
			Specializations: []string{"frontend"},
			Style:           models.StyleGeneralist,
			Availability:    100,
		},
		{
			ID: "obrien", Name: "O'Brien", Role: "Transporter Chief",
			Skills:          map[string]float64{"devops": 91, "database": 88, "observability": 84},
			Specializations: []string{"infrastructure", "implementation"},
			Style:           models.StylePartner,
			Availability:    100,
		},
	}
}

// LoadRoster reads a roster from a YAML file. An empty path returns the
// built-in roster.
func LoadRoster(path string) ([]*models.CrewMember, error) {
	if path == "" {
		return DefaultRoster(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}

	var roster []*models.CrewMember
	if err := yaml.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}

	if len(roster) == 0 {
		return nil, fmt.Errorf("roster %s is empty", path)
	}

	for _, m := range roster {
		if !m.Style.Valid() {
			return nil, fmt.Errorf("roster member %s has unknown collaboration style %q", m.ID, m.Style)
		}
	}

	return roster, nil
}
