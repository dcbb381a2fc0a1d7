package application

import (
	"github.com/taskhive/taskhive/internal/domain/entity"
)

// dropOrphanTasks filters out tasks whose parent project is absent from the
// given project set. Cascading deletes are supposed to make this impossible,
// but a crash between the two halves of a cascade (or a historical bug) can
// leave orphans behind, so every listing and aggregate passes through here.
func dropOrphanTasks(tasks []entity.Task, projects []entity.Project) []entity.Task {
	ids := make(map[string]struct{}, len(projects))
	for _, p := range projects {
		ids[p.ID] = struct{}{}
	}
	out := make([]entity.Task, 0, len(tasks))
	for _, t := range tasks {
		if _, ok := ids[t.ProjectID]; ok {
			out = append(out, t)
		}
	}
	return out
}
