package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/Aut-Labs/nova-showcase/internal/domain/models"
	"github.com/Aut-Labs/nova-showcase/internal/usecase"
)

// TasksRenderer renders the task cards of a quest
type TasksRenderer struct {
	palette
	out io.Writer
}

// NewTasksRenderer creates a new tasks renderer
func NewTasksRenderer(out io.Writer, color bool) *TasksRenderer {
	return &TasksRenderer{
		palette: palette{out: out, color: color},
		out:     out,
	}
}

// RenderTasks renders one card per task
func (r *TasksRenderer) RenderTasks(result *usecase.ListQuestTasksResult) error {
	r.section(fmt.Sprintf("%s · %s", result.Nova.Name, result.Quest.Metadata.Name))

	if len(result.Tasks) == 0 {
		fmt.Fprintln(r.out, "No tasks yet...")
		return nil
	}

	if !result.CanSubmit {
		switch {
		case !result.Eligibility.HasAppliedForQuest:
			fmt.Fprintln(r.out, r.muted("Apply for this quest to start working on its tasks"))
		case !result.Eligibility.HasQuestStarted:
			fmt.Fprintln(r.out, r.muted("Tasks open when the quest starts"))
		}
	}

	for i := range result.Tasks {
		fmt.Fprintln(r.out)
		r.renderCard(&result.Tasks[i], result.CanSubmit)
	}
	return nil
}

func (r *TasksRenderer) renderCard(task *models.Task, canSubmit bool) {
	fmt.Fprintf(r.out, "%s  %s\n", r.paint(headerStyle, fmt.Sprintf("#%d %s", task.TaskID, task.Metadata.Name)), r.status(task.Status))
	r.field("Type", task.TaskType.String())

	days := task.DurationInDays()
	unit := "days"
	if days == 1 {
		unit = "day"
	}
	r.field("Duration", fmt.Sprintf("%d %s", days, unit))

	if desc := strings.TrimSpace(task.Metadata.Description); desc != "" {
		r.field("About", Truncate(desc, 120))
	}
	if task.TaskType == models.TaskTypeJoinDiscord && canSubmit && task.Status == models.TaskStatusCreated {
		r.field("Submit", r.muted(fmt.Sprintf("nova task join-discord <dao> <quest> %d", task.TaskID)))
	}
}

func (r *TasksRenderer) status(s models.TaskStatus) string {
	label := "[" + s.String() + "]"
	switch s {
	case models.TaskStatusFinished:
		return r.ok(label)
	case models.TaskStatusSubmitted:
		return r.warn(label)
	case models.TaskStatusTaken:
		return r.paint(linkStyle, label)
	default:
		return r.muted(label)
	}
}
