package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Task is the per-run execution record of one block.
// It is created in execution order at the start of a run and discarded afterwards.
type Task struct {
	// Index is the 1-based position in the execution order.
	Index       int
	Key         Key
	Name        string
	Parents     []Key
	ParentNames []string
	// RunFit is true once the block was actually recomputed in this run.
	RunFit bool
	// Completed is true once the block produced an output, from cache or by execution.
	Completed bool
}

// NewTasks builds one task per node, preserving order.
func NewTasks(order []Node) []*Task {
	names := make(map[Key]string, len(order))
	for _, n := range order {
		names[n.Key] = n.Name
	}

	tasks := make([]*Task, len(order))
	for i, n := range order {
		parentNames := make([]string, len(n.Parents))
		for j, p := range n.Parents {
			parentNames[j] = names[p]
		}
		tasks[i] = &Task{
			Index:       i + 1,
			Key:         n.Key,
			Name:        n.Name,
			Parents:     n.Parents,
			ParentNames: parentNames,
		}
	}
	return tasks
}

// ChangedParents returns the tasks among tasks whose block is a parent of t and
// which were recomputed in this run.
func (t *Task) ChangedParents(tasks []*Task) []*Task {
	var changed []*Task
	for _, other := range tasks {
		if !other.RunFit {
			continue
		}
		if slices.Contains(t.Parents, other.Key) {
			changed = append(changed, other)
		}
	}
	return changed
}

// String renders the status line "- 01 [x] [ ] name | parents a / b".
// The first check is completion, the second is retrain.
func (t *Task) String() string {
	line := fmt.Sprintf("- %02d %s %s %s", t.Index, check(t.Completed), check(t.RunFit), t.Name)
	if len(t.ParentNames) > 0 {
		line += " | parents " + strings.Join(t.ParentNames, " / ")
	}
	return line
}

// TaskNames returns the names of the given tasks.
func TaskNames(tasks []*Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Name
	}
	return out
}

// StatusTable renders one status line per task.
func StatusTable(tasks []*Task) string {
	var b strings.Builder
	for _, t := range tasks {
		b.WriteString(t.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func check(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
