//go:build !windows && !darwin

package opener

import "fmt"

func openCommand(target string) (string, []string, error) {
	if path, err := lookPath("xdg-open"); err == nil && path != "" {
		return path, []string{target}, nil
	}
	// Fallbacks seen on minimal desktops and headless boxes.
	for _, candidate := range []string{"sensible-browser", "x-www-browser"} {
		if path, err := lookPath(candidate); err == nil && path != "" {
			return path, []string{target}, nil
		}
	}
	return "", nil, fmt.Errorf("no URL handler found (xdg-open missing)")
}
