package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Aut-Labs/nova-showcase/internal/domain"
	"github.com/Aut-Labs/nova-showcase/internal/domain/models"
	"github.com/Aut-Labs/nova-showcase/internal/usecase"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
)

// QuestItem is the structured form of a quest on a nova page
type QuestItem struct {
	QuestID     int                `json:"questId" yaml:"questId"`
	Name        string             `json:"name" yaml:"name"`
	Role        string             `json:"role" yaml:"role"`
	Active      bool               `json:"active" yaml:"active"`
	StartDate   *models.Date       `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	EndDate     *models.Date       `json:"endDate,omitempty" yaml:"endDate,omitempty"`
	TasksCount  int                `json:"tasksCount" yaml:"tasksCount"`
	URL         string             `json:"url" yaml:"url"`
	Eligibility domain.Eligibility `json:"eligibility" yaml:"eligibility"`
	Affordance  domain.Affordance  `json:"affordance" yaml:"affordance"`
}

// NovaDetails is the structured form of a nova page
type NovaDetails struct {
	Nova     *models.Nova         `json:"nova" yaml:"nova"`
	ImageURL string               `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
	IsOwner  bool                 `json:"isOwner" yaml:"isOwner"`
	Applied  *models.AppliedQuest `json:"applied,omitempty" yaml:"applied,omitempty"`
	Quests   []QuestItem          `json:"quests" yaml:"quests"`
	Tasks    []*models.NovaTask   `json:"tasks,omitempty" yaml:"tasks,omitempty"`
}

// NovaRenderer renders a nova with its quests
type NovaRenderer struct {
	palette
	out io.Writer
	now func() time.Time
}

// NewNovaRenderer creates a new nova renderer
func NewNovaRenderer(out io.Writer, color bool) *NovaRenderer {
	return &NovaRenderer{
		palette: palette{out: out, color: color},
		out:     out,
		now:     time.Now,
	}
}

// Details converts the result into its structured form
func (r *NovaRenderer) Details(result *usecase.ShowNovaResult) *NovaDetails {
	return &NovaDetails{
		Nova:     result.Nova,
		ImageURL: result.ImageURL,
		IsOwner:  result.IsOwner,
		Applied:  result.Applied,
		Quests: lo.Map(result.Quests, func(v usecase.QuestView, _ int) QuestItem {
			return QuestItem{
				QuestID:     v.Quest.QuestID,
				Name:        v.Quest.Metadata.Name,
				Role:        v.RoleName,
				Active:      v.Quest.Active,
				StartDate:   v.Quest.StartDate,
				EndDate:     v.EndDate,
				TasksCount:  v.Quest.TasksCount,
				URL:         v.URL,
				Eligibility: v.Eligibility,
				Affordance:  v.Affordance,
			}
		}),
		Tasks: result.Tasks,
	}
}

// RenderNova renders the nova header, its quests and community tasks
func (r *NovaRenderer) RenderNova(result *usecase.ShowNovaResult) error {
	nova := result.Nova

	r.section(nova.Name)
	r.field("DAO", nova.DaoAddress.Hex())
	r.field("Onboarding", nova.OnboardingQuestAddress.Hex())
	r.field("Archetype", nova.ArchetypeLabel())
	r.field("Market", nova.MarketLabel())
	r.field("Members", fmt.Sprintf("%d", nova.Properties.Members))
	r.field("Prestige", fmt.Sprintf("%d", nova.Properties.Prestige))
	if result.ImageURL != "" {
		r.field("Image", r.link(result.ImageURL))
	}
	for _, social := range nova.Properties.Socials {
		if social.Link == "" {
			continue
		}
		r.field(Title(social.Type), r.link(social.Link))
	}
	if desc := strings.TrimSpace(nova.Properties.Description); desc != "" {
		fmt.Fprintf(r.out, "\n%s\n", desc)
	}

	switch {
	case !result.Connected:
		fmt.Fprintf(r.out, "\n%s\n", r.muted("Connect an account (--account or `nova config set account`) to apply for quests"))
	case result.IsOwner:
		fmt.Fprintf(r.out, "\n%s\n", r.warn("You are the admin of this nova"))
	}

	fmt.Fprintln(r.out)
	r.section("Quests")
	if len(result.Quests) == 0 {
		fmt.Fprintln(r.out, "No quests yet...")
	} else {
		r.renderQuests(result)
	}

	if result.Tasks != nil {
		fmt.Fprintln(r.out)
		r.section("Community tasks")
		r.renderCommunityTasks(result.Tasks)
	}

	return nil
}

func (r *NovaRenderer) renderQuests(result *usecase.ShowNovaResult) {
	t := newTable(table.Row{"#", "Quest", "Role", "Starts", "Ends", "Tasks", "Status", "Action"})
	for _, v := range result.Quests {
		name := v.Quest.Metadata.Name
		if v.Eligibility.HasAppliedForQuest {
			name = "★ " + name
		}
		if !v.Quest.Active {
			name += " " + r.muted("[inactive]")
		}
		var ends time.Time
		if v.EndDate != nil {
			ends = v.EndDate.Time
		}
		t.AppendRow(table.Row{
			v.Quest.QuestID,
			name,
			v.RoleName,
			FormatDate(v.Quest.Start()),
			FormatDate(ends),
			v.Quest.TasksCount,
			r.questStatus(v),
			r.affordance(v.Affordance),
		})
	}
	fmt.Fprintln(r.out, t.Render())
}

func (r *NovaRenderer) renderCommunityTasks(tasks []*models.NovaTask) {
	if len(tasks) == 0 {
		fmt.Fprintln(r.out, "No tasks yet...")
		return
	}
	t := newTable(table.Row{"Name", "Role", "End date"})
	for _, task := range tasks {
		var end time.Time
		if task.EndDate != nil {
			end = task.EndDate.Time
		}
		t.AppendRow(table.Row{Truncate(task.Name, 48), task.Role, FormatDate(end)})
	}
	fmt.Fprintln(r.out, t.Render())
}

func (r *NovaRenderer) questStatus(v usecase.QuestView) string {
	switch {
	case !v.Quest.HasStartDate():
		return r.muted("No start date")
	case v.Eligibility.HasQuestEnded:
		return r.muted("Ended")
	case v.Eligibility.HasQuestStarted:
		return r.ok("Ongoing")
	default:
		remaining, _ := domain.RevealDelay(r.now(), v.Quest.Start())
		return r.warn("Starts in " + domain.NewCountdown(remaining).String())
	}
}

func (r *NovaRenderer) affordance(a domain.Affordance) string {
	switch {
	case a.Loading:
		return r.warn(a.Label + "...")
	case a.Kind == domain.AffordanceBlocked:
		return r.muted(fmt.Sprintf("%s (%s)", a.Label, a.Tooltip))
	case a.Disabled:
		return r.muted(a.Label)
	case a.Kind == domain.AffordanceWithdraw:
		return r.warn(a.Label)
	default:
		return r.ok(a.Label)
	}
}
