package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	imageExtRegex = regexp.MustCompile(`\.(png|jpg|jpeg)$`)
	itemIDRegex   = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
)

// ParseItemImageName extracts the catalog item id from an image filename.
// Item photos are named after the item id, e.g. "cheesecake.jpg" or
// "Brownie.PNG" → "brownie".
func ParseItemImageName(filename string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(filename))
	if name == "" {
		return "", fmt.Errorf("empty filename")
	}

	withoutExt := imageExtRegex.ReplaceAllString(name, "")
	if withoutExt == name {
		return "", fmt.Errorf("unsupported image extension: %s", filename)
	}

	if !itemIDRegex.MatchString(withoutExt) {
		return "", fmt.Errorf("invalid item image name: %s", filename)
	}

	return withoutExt, nil
}
