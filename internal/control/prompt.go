package control

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"speakdrill/internal/catalog"
)

func printCatalog(out io.Writer, cat *catalog.Catalog) {
	fmt.Fprintln(out, "CELPIP Speaking Practice")
	fmt.Fprintln(out)
	for _, t := range cat.Tasks() {
		fmt.Fprintf(out, "%d. %s (prep %ds, speak %ds)\n", t.ID, t.Name, t.PrepSeconds, t.SpeakSeconds)
	}
}

// selectTask prompts for a task id until a valid one is entered.
// Invalid input reprompts rather than exiting.
func selectTask(in io.Reader, out io.Writer, cat *catalog.Catalog) (int, error) {
	tasks := cat.Tasks()
	lo, hi := tasks[0].ID, tasks[len(tasks)-1].ID
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "\nSelect a task ID (%d-%d): ", lo, hi)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}
		raw := strings.TrimSpace(sc.Text())
		id, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(out, "Please enter a valid number.")
			continue
		}
		if _, err := cat.Get(id); err != nil {
			fmt.Fprintf(out, "Invalid task. Please enter a number from %d to %d.\n", lo, hi)
			continue
		}
		return id, nil
	}
}

// readQuestion reads a free-text question. Blank input means "use the
// task's first sample prompt" and is returned as an empty string.
func readQuestion(in io.Reader, out io.Writer) string {
	fmt.Fprint(out, "\nEnter your question (or press Enter to use the first sample): ")
	sc := bufio.NewScanner(in)
	if !sc.Scan() {
		return ""
	}
	return strings.TrimSpace(sc.Text())
}
