package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/clinicops/timekeeper/internal/models"
)

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input
// was read, the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// SelectUser prints a numbered list of user labels to w and reads the
// operator's pick. An empty line cancels and returns nil without error.
func SelectUser(reader *bufio.Reader, list []models.UserRecord, w io.Writer) (*models.UserRecord, error) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No matching users.")
		return nil, nil
	}
	for i, u := range list {
		fmt.Fprintf(w, "%3d) %s\n", i+1, u.Label())
	}

	choice, err := GetSimpleText(reader, "Select user number (empty to cancel)", w)
	if err != nil {
		return nil, err
	}
	if choice == "" {
		return nil, nil
	}

	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(list) {
		return nil, fmt.Errorf("invalid selection: %q", choice)
	}
	return &list[n-1], nil
}
