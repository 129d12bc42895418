package ecs

// Stage is a named group of systems in the frame pipeline.
type Stage struct {
	Name    string
	Systems []System
}

// Scheduler runs stages in a fixed order. It is itself a System so a world
// can hold a single scheduler as its whole pipeline.
type Scheduler struct {
	stages []Stage
}

func NewScheduler(stages ...Stage) *Scheduler {
	copied := append([]Stage(nil), stages...)
	return &Scheduler{stages: copied}
}

// Add appends systems to the named stage, creating it at the end if needed.
func (s *Scheduler) Add(stage string, systems ...System) {
	for i := range s.stages {
		if s.stages[i].Name == stage {
			s.stages[i].Systems = append(s.stages[i].Systems, systems...)
			return
		}
	}
	s.stages = append(s.stages, Stage{Name: stage, Systems: systems})
}

func (s *Scheduler) Update(w *World) {
	for _, stage := range s.stages {
		for _, system := range stage.Systems {
			if system != nil {
				system.Update(w)
			}
		}
	}
}

// StageNames returns the stage order.
func (s *Scheduler) StageNames() []string {
	names := make([]string, 0, len(s.stages))
	for _, stage := range s.stages {
		names = append(names, stage.Name)
	}
	return names
}
