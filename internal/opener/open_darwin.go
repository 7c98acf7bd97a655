//go:build darwin

package opener

import "fmt"

func openCommand(target string) (string, []string, error) {
	path, err := lookPath("open")
	if err != nil || path == "" {
		return "", nil, fmt.Errorf("no URL handler found: %v", err)
	}
	return path, []string{target}, nil
}
