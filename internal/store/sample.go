package store

import "github.com/ember-forge/warband/internal/models"

// Built-in sample dataset. It doubles as a demo for first-time users
// and is restored by ResetAll.

func sampleCharacters() []models.Character {
	return []models.Character{
		{
			ID:      "champ-1",
			Name:    "Arbiter",
			Faction: "High Elves",
			Type:    "Support",
			Rarity:  models.RarityLegendary,
			Level:   60,
		},
		{
			ID:      "champ-2",
			Name:    "Kael",
			Faction: "Dark Elves",
			Type:    "Attack",
			Rarity:  models.RarityRare,
			Level:   60,
		},
		{
			ID:      "champ-3",
			Name:    "Bad-el-Kazar",
			Faction: "Undead Hordes",
			Type:    "Support",
			Rarity:  models.RarityLegendary,
			Level:   60,
		},
	}
}

func sampleGear() models.GearInventory {
	return models.GearInventory{
		models.GearSpeedBoots:    8,
		models.GearPerception:    4,
		models.GearLifesteal:     3,
		models.GearSavage:        2,
		models.GearResistanceAcc: 6,
	}
}

func sampleResources() models.ResourceLedger {
	return models.ResourceLedger{
		models.ResourceEnergy:        325,
		models.ResourceGems:          1400,
		models.ResourceSilver:        2800000,
		models.ResourceAncientShards: 24,
		models.ResourceVoidShards:    4,
		models.ResourceSacredShards:  1,
		models.ResourceArcanePotions: 45,
	}
}

func sampleTasks() []models.Task {
	return []models.Task{
		{
			ID:          "task-1",
			Title:       "Farm Dragon 20",
			Description: "Target: 100 runs for artifacts.",
			Priority:    models.PriorityHigh,
			DueDate:     "2024-06-01",
			Status:      models.StatusTodo,
		},
		{
			ID:          "task-2",
			Title:       "Upgrade Kael gear",
			Description: "Take gloves and chest to +16.",
			Priority:    models.PriorityMedium,
			DueDate:     "2024-05-25",
			Status:      models.StatusInProgress,
		},
		{
			ID:          "task-3",
			Title:       "Faction Wars: High Elves",
			Description: "Complete stage 21 with 3 stars.",
			Priority:    models.PriorityHigh,
			DueDate:     "2024-06-15",
			Status:      models.StatusComplete,
		},
	}
}

func sampleMilestones() []models.Milestone {
	return []models.Milestone{
		{
			ID:          "goal-1",
			Name:        "Unlock Arbiter",
			Description: "Finish all missions leading to Arbiter unlock.",
			TargetDate:  "2024-08-30",
			Progress:    55,
		},
		{
			ID:          "goal-2",
			Name:        "Faction Wars Completion",
			Description: "Reach 3 stars on all faction crypts.",
			TargetDate:  "2024-12-01",
			Progress:    32,
		},
		{
			ID:          "goal-3",
			Name:        "Gear Upgrade Project",
			Description: "Upgrade 20 artifact pieces to +16.",
			TargetDate:  "2024-07-15",
			Progress:    75,
		},
	}
}

func sampleStats() models.Stats {
	chars := sampleCharacters()
	sixStar := 0
	for _, c := range chars {
		if c.Level == models.MaxLevel {
			sixStar++
		}
	}
	return models.Stats{
		TotalCharacters: len(chars),
		TotalSixStar:    sixStar,
	}
}
