package arg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Paintersrp/sidoc/internal/portal"
)

// HandleID parses the first positional argument as a document id.
func HandleID(args []string) (portal.DocumentID, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("a document id is required")
	}
	id, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid document id %q: expected a positive number", args[0])
	}
	return portal.DocumentID(id), nil
}
