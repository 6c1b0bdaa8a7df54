package cli

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"crewlink/shared/failure"
)

// RenderError formats a service error for the terminal. Validation failures
// expand into one line per offending field.
func RenderError(err error) string {
	var validation *failure.Validation
	if errors.As(err, &validation) {
		var b strings.Builder

		b.WriteString(errorStyle.Render("Invalid input:"))
		b.WriteString("\n")

		fields := make([]string, 0, len(validation.Fields))
		for field := range validation.Fields {
			fields = append(fields, field)
		}

		sort.Strings(fields)

		for _, field := range fields {
			b.WriteString(fieldErrorStyle.Render(fmt.Sprintf("%s: %s", field, validation.Fields[field])))
			b.WriteString("\n")
		}

		return b.String()
	}

	return errorStyle.Render("Error: "+err.Error()) + "\n"
}

func printSuccess(msg string) {
	fmt.Println(successStyle.Render(msg))
}

func printField(label, value string) {
	fmt.Printf("%s %s\n", labelStyle.Render(label+":"), valueStyle.Render(value))
}

func printRow(parts ...string) {
	fmt.Println(rowStyle.Render(strings.Join(parts, "  ")))
}

func printCount(shown, total int) {
	if total > shown {
		fmt.Println(countStyle.Render(fmt.Sprintf("showing %d of %d", shown, total)))
	}
}
