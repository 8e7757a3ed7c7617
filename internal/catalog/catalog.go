// Package catalog holds the speaking-task definitions a practice session
// selects from.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
)

// ErrNotFound is returned by Get for ids outside the catalog.
var ErrNotFound = errors.New("task not found")

// Task describes one speaking exercise: its timing and sample prompts.
type Task struct {
	ID            int      `toml:"id"`
	Name          string   `toml:"name"`
	Description   string   `toml:"description"`
	PrepSeconds   int      `toml:"prep_seconds"`
	SpeakSeconds  int      `toml:"speak_seconds"`
	SamplePrompts []string `toml:"sample_prompts"`
}

// Catalog is an immutable set of tasks keyed by id. Construct one with
// Builtin, New, or Load and pass it into the session controller.
type Catalog struct {
	tasks []Task
	byID  map[int]Task
}

// New validates tasks and builds a catalog. Tasks are returned by Tasks
// in ascending id order regardless of input order.
func New(tasks []Task) (*Catalog, error) {
	if len(tasks) == 0 {
		return nil, errors.New("catalog: no tasks defined")
	}
	byID := make(map[int]Task, len(tasks))
	sorted := make([]Task, len(tasks))
	copy(sorted, tasks)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	for _, t := range sorted {
		if t.ID <= 0 {
			return nil, fmt.Errorf("catalog: task %q has invalid id %d", t.Name, t.ID)
		}
		if _, dup := byID[t.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate task id %d", t.ID)
		}
		if t.SpeakSeconds <= 0 {
			return nil, fmt.Errorf("catalog: task %d: speak_seconds must be positive", t.ID)
		}
		if t.PrepSeconds < 0 {
			return nil, fmt.Errorf("catalog: task %d: prep_seconds must not be negative", t.ID)
		}
		if len(t.SamplePrompts) == 0 {
			return nil, fmt.Errorf("catalog: task %d: at least one sample prompt required", t.ID)
		}
		byID[t.ID] = t
	}
	return &Catalog{tasks: sorted, byID: byID}, nil
}

// Load reads a catalog from a TOML file with [[task]] entries.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc struct {
		Tasks []Task `toml:"task"`
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return New(doc.Tasks)
}

// Tasks returns all tasks in ascending id order.
func (c *Catalog) Tasks() []Task {
	out := make([]Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// Get returns the task with the given id.
func (c *Catalog) Get(id int) (Task, error) {
	t, ok := c.byID[id]
	if !ok {
		return Task{}, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	return t, nil
}

// Len returns the number of tasks.
func (c *Catalog) Len() int { return len(c.tasks) }

// Builtin returns the standard eight CELPIP speaking tasks.
func Builtin() *Catalog {
	c, err := New(builtinTasks)
	if err != nil {
		// builtinTasks is static; a validation failure is a programming error.
		panic(err)
	}
	return c
}

var builtinTasks = []Task{
	{
		ID:           1,
		Name:         "Giving Advice",
		Description:  "Give advice in response to a friend's or colleague's request",
		PrepSeconds:  30,
		SpeakSeconds: 90,
		SamplePrompts: []string{
			"Your friend wants to eat healthier—what do you recommend?",
			"A colleague is stressed about a presentation—how can they prepare?",
		},
	},
	{
		ID:           2,
		Name:         "Talking About a Personal Experience",
		Description:  "Describe a memorable past event",
		PrepSeconds:  30,
		SpeakSeconds: 60,
		SamplePrompts: []string{
			"Describe a time when you learned something important.",
			"Talk about a time you met someone special.",
		},
	},
	{
		ID:           3,
		Name:         "Describing a Scene",
		Description:  "Describe clearly what is happening in a provided picture",
		PrepSeconds:  30,
		SpeakSeconds: 60,
		SamplePrompts: []string{
			"Describe what you see happening at a community festival.",
			"Describe the scene at a busy café.",
		},
	},
	{
		ID:           4,
		Name:         "Making Predictions",
		Description:  "Predict likely future events based on a picture",
		PrepSeconds:  30,
		SpeakSeconds: 60,
		SamplePrompts: []string{
			"Someone has just missed their bus—what might they do next?",
			"Children are playing soccer—what will happen in the next hour?",
		},
	},
	{
		ID:           5,
		Name:         "Comparing and Persuading",
		Description:  "Compare two provided options and persuade a listener",
		PrepSeconds:  30,
		SpeakSeconds: 60,
		SamplePrompts: []string{
			"Persuade your friend to choose between two different vacation destinations.",
			"Recommend either a bicycle or scooter to commute to work.",
		},
	},
	{
		ID:           6,
		Name:         "Dealing with a Difficult Situation",
		Description:  "Explain a problem and request assistance",
		PrepSeconds:  30,
		SpeakSeconds: 60,
		SamplePrompts: []string{
			"Your internet service stopped working—call customer support for help.",
			"You received incorrect food at a restaurant—politely ask for the correct order.",
		},
	},
	{
		ID:           7,
		Name:         "Expressing Opinions",
		Description:  "Give your view on an issue, providing support",
		PrepSeconds:  30,
		SpeakSeconds: 90,
		SamplePrompts: []string{
			"Should schools have a mandatory sports program? Why or why not?",
			"Should smoking be banned in all public areas?",
		},
	},
	{
		ID:           8,
		Name:         "Describing an Unusual Situation",
		Description:  "Describe an unusual object or scenario clearly over the phone",
		PrepSeconds:  30,
		SpeakSeconds: 60,
		SamplePrompts: []string{
			"Explain to your friend what a strange art installation looks like.",
			"Describe an unusual vehicle parked outside your home.",
		},
	},
}
