package models

import "testing"

func TestPriorityRank_Ordering(t *testing.T) {
	order := []Priority{PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow}
	for i := 1; i < len(order); i++ {
		if order[i-1].Rank() >= order[i].Rank() {
			t.Errorf("Rank(%s) = %d should be less than Rank(%s) = %d",
				order[i-1], order[i-1].Rank(), order[i], order[i].Rank())
		}
	}
}

func TestPriorityRank_UnknownRanksLast(t *testing.T) {
	unknown := Priority("unknown")
	if unknown.Rank() <= PriorityLow.Rank() {
		t.Errorf("unknown priority should rank after low, got %d", unknown.Rank())
	}
}

func TestTaskType_Valid(t *testing.T) {
	tests := []struct {
		taskType TaskType
		want     bool
	}{
		{TaskTypePlanning, true},
		{TaskTypeDevelopment, true},
		{TaskTypeOptimization, true},
		{TaskTypeReview, true},
		{TaskType("deploy"), false},
		{TaskType(""), false},
	}

	for _, tt := range tests {
		if got := tt.taskType.Valid(); got != tt.want {
			t.Errorf("TaskType(%q).Valid() = %v, want %v", tt.taskType, got, tt.want)
		}
	}
}

func TestComplexity_Valid(t *testing.T) {
	tests := []struct {
		complexity Complexity
		want       bool
	}{
		{ComplexitySimple, true},
		{ComplexityMedium, true},
		{ComplexityComplex, true},
		{Complexity("trivial"), false},
	}

	for _, tt := range tests {
		if got := tt.complexity.Valid(); got != tt.want {
			t.Errorf("Complexity(%q).Valid() = %v, want %v", tt.complexity, got, tt.want)
		}
	}
}

func TestTaskStatus_Valid(t *testing.T) {
	tests := []struct {
		status TaskStatus
		want   bool
	}{
		{TaskStatusPending, true},
		{TaskStatusActive, true},
		{TaskStatusDone, true},
		{TaskStatus("failed"), false},
	}

	for _, tt := range tests {
		if got := tt.status.Valid(); got != tt.want {
			t.Errorf("TaskStatus(%q).Valid() = %v, want %v", tt.status, got, tt.want)
		}
	}
}
