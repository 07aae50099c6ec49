package collab

import (
	"testing"

	"github.com/familiarcat/crewcoord/pkg/models"
)

func member(id string, style models.CollaborationStyle, availability float64, skills map[string]float64, specs ...string) *models.CrewMember {
	return &models.CrewMember{
		ID:              id,
		Name:            id,
		Style:           style,
		Availability:    availability,
		Skills:          skills,
		Specializations: specs,
	}
}

func TestScore_InRange(t *testing.T) {
	scorer := NewSynergyScorer()

	a := member("a", models.StyleMentor, 90,
		map[string]float64{"backend": 90, "api-design": 85, "testing": 70}, "backend", "architecture")
	b := member("b", models.StylePartner, 85,
		map[string]float64{"backend": 80, "frontend": 88, "testing": 75}, "frontend", "implementation")

	got := scorer.Score(a, b)
	if got < 0 || got > 100 {
		t.Fatalf("Score = %v, want within [0, 100]", got)
	}
}

func TestScore_Symmetric(t *testing.T) {
	scorer := NewSynergyScorer()

	a := member("a", models.StyleMentor, 90, map[string]float64{"backend": 80}, "frontend")
	b := member("b", models.StyleGeneralist, 70, map[string]float64{"backend": 60}, "backend")

	if ab, ba := scorer.Score(a, b), scorer.Score(b, a); ab != ba {
		t.Errorf("Score(a,b) = %v but Score(b,a) = %v; want equal", ab, ba)
	}
}

func TestScore_SelfPair(t *testing.T) {
	scorer := NewSynergyScorer()
	a := member("a", models.StyleSpecialist, 50, map[string]float64{"security": 95}, "security")

	// Self-pairing is not used in practice but must be well-defined.
	got := scorer.Score(a, a)
	if got < 0 || got > 100 {
		t.Errorf("Score(a,a) = %v, want within [0, 100]", got)
	}
}

func TestScore_EmptyMembers(t *testing.T) {
	scorer := NewSynergyScorer()
	a := &models.CrewMember{ID: "a"}
	b := &models.CrewMember{ID: "b"}

	// Unknown skills and styles contribute zero from their components;
	// the unknown-style default still applies.
	got := scorer.Score(a, b)
	if got != styleDefault {
		t.Errorf("Score of empty members = %v, want %v (style default only)", got, float64(styleDefault))
	}
}

func TestSharedSkills_Cap(t *testing.T) {
	scorer := NewSynergyScorer()
	skills := map[string]float64{"a": 90, "b": 90, "c": 90, "d": 90}
	a := member("a", models.StylePartner, 0, skills)
	b := member("b", models.StylePartner, 0, skills)

	if got := scorer.sharedSkills(a, b); got != 30 {
		t.Errorf("sharedSkills = %v, want capped at 30", got)
	}
}

func TestSharedSkills_NoOverlap(t *testing.T) {
	scorer := NewSynergyScorer()
	a := member("a", models.StylePartner, 0, map[string]float64{"x": 90})
	b := member("b", models.StylePartner, 0, map[string]float64{"y": 90})

	if got := scorer.sharedSkills(a, b); got != 0 {
		t.Errorf("sharedSkills with no overlap = %v, want 0", got)
	}
}

func TestComplementary_EitherDirection(t *testing.T) {
	scorer := NewSynergyScorer()

	tests := []struct {
		name  string
		specA []string
		specB []string
		want  float64
	}{
		{"frontend/backend", []string{"frontend"}, []string{"backend"}, 10},
		{"backend/frontend reversed", []string{"backend"}, []string{"frontend"}, 10},
		{"two pairs", []string{"frontend", "security"}, []string{"backend", "development"}, 20},
		{"no match", []string{"frontend"}, []string{"frontend"}, 0},
		{"empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := member("a", models.StylePartner, 0, nil, tt.specA...)
			b := member("b", models.StylePartner, 0, nil, tt.specB...)
			if got := scorer.complementary(a, b); got != tt.want {
				t.Errorf("complementary = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStyleScore_BothOrderings(t *testing.T) {
	scorer := NewSynergyScorer()

	// mentor-partner is stored one way; both orderings must resolve to it.
	a := member("a", models.StyleMentor, 0, nil)
	b := member("b", models.StylePartner, 0, nil)

	if got := scorer.styleScore(a, b); got != 20 {
		t.Errorf("styleScore(mentor, partner) = %v, want 20", got)
	}
	if got := scorer.styleScore(b, a); got != 20 {
		t.Errorf("styleScore(partner, mentor) = %v, want 20", got)
	}
}

func TestStyleScore_UnknownDefaults(t *testing.T) {
	scorer := NewSynergyScorer()
	a := member("a", models.CollaborationStyle("maverick"), 0, nil)
	b := member("b", models.StylePartner, 0, nil)

	if got := scorer.styleScore(a, b); got != styleDefault {
		t.Errorf("styleScore with unknown style = %v, want default %d", got, styleDefault)
	}
}

func TestAvailabilityScore_Buckets(t *testing.T) {
	scorer := NewSynergyScorer()

	tests := []struct {
		availA, availB float64
		want           float64
	}{
		{100, 100, 10},
		{90, 80, 10}, // avg 85
		{70, 60, 5},  // avg 65
		{50, 40, 2},  // avg 45
		{30, 30, 0},
		{0, 0, 0},
	}

	for _, tt := range tests {
		a := member("a", models.StylePartner, tt.availA, nil)
		b := member("b", models.StylePartner, tt.availB, nil)
		if got := scorer.availabilityScore(a, b); got != tt.want {
			t.Errorf("availabilityScore(avg %v) = %v, want %v", (tt.availA+tt.availB)/2, got, tt.want)
		}
	}
}
