package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// readLine prints a prompt and reads a single line of input. The trailing
// newline is trimmed. If EOF occurs after some input was read, the partial
// line is returned.
func (c *CLI) readLine(prompt string) (string, error) {
	c.printf("%s: ", prompt)

	line, err := c.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readSecret prints a prompt and reads a value from the terminal without
// echo. A newline is printed after the read to keep the UI tidy.
func (c *CLI) readSecret(prompt string) (string, error) {
	c.printf("%s: ", prompt)

	value, err := readPassword(int(os.Stdin.Fd()))
	c.printf("\n")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(value)), nil
}

// readSecretTwice reads a hidden value and its confirmation. Hidden input
// hides typos too, so anything worth storing is entered twice.
func (c *CLI) readSecretTwice(prompt string) (string, error) {
	first, err := c.readSecret(prompt)
	if err != nil {
		return "", err
	}
	second, err := c.readSecret(fmt.Sprintf("%s (again)", prompt))
	if err != nil {
		return "", err
	}
	if first != second {
		return "", errEntriesDoNotMatch
	}
	return first, nil
}
