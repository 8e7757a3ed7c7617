package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinGetReturnsRequestedID(t *testing.T) {
	c := Builtin()
	for _, task := range c.Tasks() {
		got, err := c.Get(task.ID)
		if err != nil {
			t.Fatalf("get %d: %v", task.ID, err)
		}
		if got.ID != task.ID {
			t.Fatalf("get %d returned id %d", task.ID, got.ID)
		}
		if len(got.SamplePrompts) == 0 {
			t.Fatalf("task %d has no sample prompts", task.ID)
		}
	}
}

func TestGetUnknownIDFails(t *testing.T) {
	c := Builtin()
	for _, id := range []int{0, -1, 9, 100} {
		if _, err := c.Get(id); !errors.Is(err, ErrNotFound) {
			t.Fatalf("get %d: want ErrNotFound, got %v", id, err)
		}
	}
}

func TestBuiltinIDsUniqueAndOrdered(t *testing.T) {
	c := Builtin()
	tasks := c.Tasks()
	if len(tasks) != 8 {
		t.Fatalf("expected 8 builtin tasks, got %d", len(tasks))
	}
	for i, task := range tasks {
		if task.ID != i+1 {
			t.Fatalf("task at position %d has id %d", i, task.ID)
		}
	}
}

func TestNewRejectsInvalidTasks(t *testing.T) {
	cases := []struct {
		name  string
		tasks []Task
	}{
		{"empty", nil},
		{"duplicate id", []Task{
			{ID: 1, Name: "a", SpeakSeconds: 60, SamplePrompts: []string{"p"}},
			{ID: 1, Name: "b", SpeakSeconds: 60, SamplePrompts: []string{"p"}},
		}},
		{"zero id", []Task{{ID: 0, Name: "a", SpeakSeconds: 60, SamplePrompts: []string{"p"}}}},
		{"no prompts", []Task{{ID: 1, Name: "a", SpeakSeconds: 60}}},
		{"zero speak", []Task{{ID: 1, Name: "a", SamplePrompts: []string{"p"}}}},
		{"negative prep", []Task{{ID: 1, Name: "a", PrepSeconds: -1, SpeakSeconds: 60, SamplePrompts: []string{"p"}}}},
	}
	for _, c := range cases {
		if _, err := New(c.tasks); err == nil {
			t.Fatalf("%s: expected error", c.name)
		}
	}
}

func TestLoadTOMLCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.toml")
	doc := `
[[task]]
id = 2
name = "Short Answer"
description = "quick drill"
prep_seconds = 5
speak_seconds = 15
sample_prompts = ["Say something.", "Say more."]

[[task]]
id = 1
name = "Warm Up"
speak_seconds = 10
sample_prompts = ["Hello?"]
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	tasks := c.Tasks()
	if len(tasks) != 2 || tasks[0].ID != 1 || tasks[1].ID != 2 {
		t.Fatalf("tasks not sorted by id: %+v", tasks)
	}
	got, err := c.Get(2)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Short Answer" || got.PrepSeconds != 5 || got.SpeakSeconds != 15 {
		t.Fatalf("unexpected task: %+v", got)
	}
}
