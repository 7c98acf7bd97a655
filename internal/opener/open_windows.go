//go:build windows

package opener

import "fmt"

func openCommand(target string) (string, []string, error) {
	path, err := lookPath("rundll32")
	if err != nil || path == "" {
		return "", nil, fmt.Errorf("no URL handler found: %v", err)
	}
	return path, []string{"url.dll,FileProtocolHandler", target}, nil
}
