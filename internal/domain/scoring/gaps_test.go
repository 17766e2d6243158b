package scoring

import "testing"

func TestNewPrioritizedGap(t *testing.T) {
	g := NewPrioritizedGap("Kubernetes", 82.5)
	if g.Priority != "critical" {
		t.Fatalf("priority = %s", g.Priority)
	}
	if g.Difficulty != 4 {
		t.Fatalf("difficulty = %d", g.Difficulty)
	}
	if g.EstimatedLearningWeeks != 8 {
		t.Fatalf("weeks = %d", g.EstimatedLearningWeeks)
	}
	if g.DemandScore != 82.5 {
		t.Fatalf("demand = %v", g.DemandScore)
	}
}

func TestSkillDifficulty_Default(t *testing.T) {
	if got := SkillDifficulty("Some Framework"); got != 3 {
		t.Fatalf("got %d", got)
	}
}

func TestSortByDemand_Stable(t *testing.T) {
	gaps := []PrioritizedGap{
		{Skill: "A", DemandScore: 50},
		{Skill: "B", DemandScore: 90},
		{Skill: "C", DemandScore: 50},
	}
	SortByDemand(gaps)
	if gaps[0].Skill != "B" || gaps[1].Skill != "A" || gaps[2].Skill != "C" {
		t.Fatalf("order = %v", gaps)
	}
}

func TestPartitionPhases(t *testing.T) {
	prioritized := []PrioritizedGap{
		NewPrioritizedGap("HTML", 40),
		NewPrioritizedGap("CSS", 40),
		NewPrioritizedGap("Git", 40),
		NewPrioritizedGap("Python", 60),
		NewPrioritizedGap("Docker", 70),
		NewPrioritizedGap("Machine Learning", 90),
		NewPrioritizedGap("Kubernetes", 85),
		NewPrioritizedGap("Deep Learning", 80),
	}

	phases := PartitionPhases(prioritized)
	if len(phases) != 3 {
		t.Fatalf("expected 3 phases, got %d", len(phases))
	}

	if phases[0].Focus != "Foundation Skills" || len(phases[0].Skills) != 3 {
		t.Fatalf("foundation = %+v", phases[0])
	}
	if phases[1].Focus != "Core Competencies" || len(phases[1].Skills) != 1 {
		t.Fatalf("core = %+v", phases[1])
	}
	if phases[2].Focus != "Advanced Skills" || len(phases[2].Skills) != 2 {
		t.Fatalf("advanced should cap at 2, got %+v", phases[2])
	}
}

func TestPartitionPhases_EmptyInput(t *testing.T) {
	phases := PartitionPhases(nil)
	for _, p := range phases {
		if p.Skills == nil || len(p.Skills) != 0 {
			t.Fatalf("phase %d skills should be empty, got %v", p.Phase, p.Skills)
		}
	}
}
