// Package opener is the navigation collaborator: it normalizes a detected
// link target and hands it to the platform's URL handler. The segmentation
// engine never calls into this package; only the app layer does, after the
// user activates a link.
package opener

import (
	"fmt"
	"net/url"
	"os/exec"
	"strings"
)

var lookPath = exec.LookPath

// Normalize validates raw and returns the absolute URL to dispatch.
// Schemeless targets (bare www hosts) get https by default and bare email
// addresses get mailto. Detection already produced something URL-shaped;
// this is the last check before leaving the process.
func Normalize(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty link target")
	}

	if !strings.Contains(raw, "://") && !strings.HasPrefix(raw, "mailto:") {
		if strings.Contains(raw, "@") && !strings.Contains(raw, "/") {
			raw = "mailto:" + raw
		} else {
			raw = "https://" + raw
		}
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid link target %q: %w", raw, err)
	}
	switch parsed.Scheme {
	case "http", "https", "mailto":
	default:
		return "", fmt.Errorf("refusing to open scheme %q", parsed.Scheme)
	}
	if parsed.Scheme != "mailto" && parsed.Host == "" {
		return "", fmt.Errorf("link target %q has no host", raw)
	}
	return parsed.String(), nil
}

// Open normalizes raw and dispatches it to the platform URL handler. The
// handler runs detached; Open reports only launch failures, not the
// handler's own outcome.
func Open(raw string) error {
	target, err := Normalize(raw)
	if err != nil {
		return err
	}
	name, args, err := openCommand(target)
	if err != nil {
		return err
	}
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("cannot launch URL handler: %w", err)
	}
	// Reap the handler in the background so it doesn't linger as a zombie.
	go func() { _ = cmd.Wait() }()
	return nil
}
