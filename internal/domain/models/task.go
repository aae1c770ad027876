package models

import (
	"math"

	"github.com/ethereum/go-ethereum/common"
)

// TaskStatus is the lifecycle state of a task, driven by the backend
type TaskStatus int

const (
	TaskStatusCreated TaskStatus = iota
	TaskStatusTaken
	TaskStatusSubmitted
	TaskStatusFinished
)

// TaskStatusLabels are the display labels of each status
var TaskStatusLabels = map[TaskStatus]string{
	TaskStatusCreated:   "To Do",
	TaskStatusTaken:     "Taken",
	TaskStatusSubmitted: "Pending",
	TaskStatusFinished:  "Completed",
}

func (s TaskStatus) String() string {
	if label, ok := TaskStatusLabels[s]; ok {
		return label
	}
	return "Unknown"
}

// IsDone reports whether the task has been submitted or finished
func (s TaskStatus) IsDone() bool {
	return s == TaskStatusSubmitted || s == TaskStatusFinished
}

// TaskType is the kind of onboarding work a task requires
type TaskType int

const (
	TaskTypeOpen TaskType = iota
	TaskTypeContractInteraction
	TaskTypeQuiz
	TaskTypeJoinDiscord
)

// TaskTypeInfo describes the plugin serving a task type
type TaskTypeInfo struct {
	PluginType string
	Label      string
	Path       string
}

// TaskTypes maps each task type to its plugin and label
var TaskTypes = map[TaskType]TaskTypeInfo{
	TaskTypeOpen: {
		PluginType: "OnboardingOpenTaskPlugin",
		Label:      "Open Task",
		Path:       "open",
	},
	TaskTypeContractInteraction: {
		PluginType: "OnboardingTransactionTaskPlugin",
		Label:      "Contract Interaction",
		Path:       "transaction",
	},
	TaskTypeQuiz: {
		PluginType: "OnboardingQuizTaskPlugin",
		Label:      "Multiple-Choice Quiz",
		Path:       "quiz",
	},
	TaskTypeJoinDiscord: {
		PluginType: "OnboardingJoinDiscordTaskPlugin",
		Label:      "Join Discord",
		Path:       "join-discord",
	},
}

func (t TaskType) String() string {
	if info, ok := TaskTypes[t]; ok {
		return info.Label
	}
	return "Unknown"
}

// Task is a unit of onboarding work within a quest
type Task struct {
	TaskID    int          `json:"taskId" yaml:"taskId"`
	TaskType  TaskType     `json:"taskType" yaml:"taskType"`
	Status    TaskStatus   `json:"status" yaml:"status"`
	Creator   string       `json:"creator,omitempty" yaml:"creator,omitempty"`
	StartDate *Date        `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	EndDate   *Date        `json:"endDate,omitempty" yaml:"endDate,omitempty"`
	Metadata  TaskMetadata `json:"metadata" yaml:"metadata"`
}

// TaskMetadata is the off-chain description of a task
type TaskMetadata struct {
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
	Properties  map[string]any `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// DurationInDays returns the whole days between start and end, rounded toward zero
func (t *Task) DurationInDays() int {
	if t.StartDate == nil || t.EndDate == nil {
		return 0
	}
	days := t.EndDate.Sub(t.StartDate.Time).Hours() / 24
	return int(math.Trunc(days))
}

// InviteURL returns the Discord invite link of a join-discord task
func (t *Task) InviteURL() string {
	if t.Metadata.Properties == nil {
		return ""
	}
	if v, ok := t.Metadata.Properties["inviteUrl"].(string); ok {
		return v
	}
	return ""
}

// QuestTasks is the task list of one quest as seen by one account
type QuestTasks struct {
	OnboardingQuestAddress common.Address `json:"onboardingQuestAddress" yaml:"onboardingQuestAddress"`
	QuestID                int            `json:"questId" yaml:"questId"`
	Tasks                  []Task         `json:"tasks" yaml:"tasks"`
}

// FindTask returns the task with the given id
func (q *QuestTasks) FindTask(taskID int) (*Task, bool) {
	for i := range q.Tasks {
		if q.Tasks[i].TaskID == taskID {
			return &q.Tasks[i], true
		}
	}
	return nil, false
}
