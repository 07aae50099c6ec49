package models

import "testing"

func TestCollaborationStyle_Valid(t *testing.T) {
	tests := []struct {
		style CollaborationStyle
		want  bool
	}{
		{StyleMentor, true},
		{StylePartner, true},
		{StyleSpecialist, true},
		{StyleGeneralist, true},
		{CollaborationStyle("loner"), false},
		{CollaborationStyle(""), false},
	}

	for _, tt := range tests {
		if got := tt.style.Valid(); got != tt.want {
			t.Errorf("CollaborationStyle(%q).Valid() = %v, want %v", tt.style, got, tt.want)
		}
	}
}

func TestCrewMember_HasSpecialization(t *testing.T) {
	m := &CrewMember{
		ID:              "geordi",
		Specializations: []string{"infrastructure", "engineering"},
	}

	if !m.HasSpecialization("engineering") {
		t.Error("expected HasSpecialization(engineering) = true")
	}
	if m.HasSpecialization("ux") {
		t.Error("expected HasSpecialization(ux) = false")
	}
}

func TestCrewMember_SkillLevel(t *testing.T) {
	m := &CrewMember{
		ID:     "data",
		Skills: map[string]float64{"analysis": 98},
	}

	if got := m.SkillLevel("analysis"); got != 98 {
		t.Errorf("SkillLevel(analysis) = %v, want 98", got)
	}
	if got := m.SkillLevel("diplomacy"); got != 0 {
		t.Errorf("SkillLevel(diplomacy) = %v, want 0 for unknown skill", got)
	}
}

func TestAvgSynergy(t *testing.T) {
	o := &CollaborationOpportunity{
		Pairs: []CollaborationPair{
			{Synergy: 80},
			{Synergy: 60},
		},
	}
	if got := o.AvgSynergy(); got != 70 {
		t.Errorf("AvgSynergy() = %v, want 70", got)
	}

	empty := &CollaborationOpportunity{}
	if got := empty.AvgSynergy(); got != 0 {
		t.Errorf("AvgSynergy() on empty pairs = %v, want 0", got)
	}
}
