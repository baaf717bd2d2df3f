package controls

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

var ErrUnknownCommand = errors.New("unknown command")

var ruleAliases = map[string]Rule{
	"o":            Overcrowding,
	"overcrowding": Overcrowding,
	"s":            Starvation,
	"starvation":   Starvation,
	"bmin":         BirthMin,
	"birthmin":     BirthMin,
	"bmax":         BirthMax,
	"birthmax":     BirthMax,
}

/*
Apply runs one text command against the controls and returns a short status line.

Commands:

	o+ o- s+ s- bmin+ bmin- bmax+ bmax-   adjust a rule threshold by one
	p+ p-                                 adjust the start percentage by ten
	wrap                                  toggle wraparound
	anim                                  toggle animation
	r                                     randomize the grid
*/
func (c *Controls) Apply(command string) (string, error) {
	cmd := strings.ToLower(strings.TrimSpace(command))

	switch cmd {
	case "":
		return "", nil
	case "wrap", "w":
		return fmt.Sprintf("wraparound %s", onOff(c.ToggleWrapAround())), nil
	case "anim", "a", "pause":
		return fmt.Sprintf("animation %s", onOff(c.ToggleAnimation())), nil
	case "r", "randomize":
		c.RequestRandomize()
		return "randomize requested", nil
	case "p+":
		return fmt.Sprintf("start percentage %d%%", c.IncreaseStartPercentage()), nil
	case "p-":
		return fmt.Sprintf("start percentage %d%%", c.DecreaseStartPercentage()), nil
	}

	if len(cmd) > 1 {
		diff := 0
		switch cmd[len(cmd)-1] {
		case '+':
			diff = RuleStep
		case '-':
			diff = -RuleStep
		}
		if rule, ok := ruleAliases[cmd[:len(cmd)-1]]; ok && diff != 0 {
			v, err := c.AdjustRule(rule, diff)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%s %d", rule, v), nil
		}
	}

	return "", errors.Wrapf(ErrUnknownCommand, "[Apply] %q", command)
}

// Listen applies every line read from r until ctx is done or r is exhausted.
// Status lines and command errors are reported through report.
func (c *Controls) Listen(ctx context.Context, r io.Reader, report func(msg string)) error {
	lines := make(chan string)
	errCh := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errCh <- nil
				return
			}
		}
		errCh <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-errCh; err != nil {
					return errors.Wrap(err, "[Listen] failed to read commands")
				}
				return nil
			}
			msg, err := c.Apply(line)
			if err != nil {
				msg = err.Error()
			}
			if msg != "" && report != nil {
				report(msg)
			}
		}
	}
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}
