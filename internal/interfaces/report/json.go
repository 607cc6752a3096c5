package report

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"

	"github.com/azajakins/lfl-stats/internal/usecase"
)

// RenderJSON writes the six leaderboards as one JSON document, rows in
// ranked order.
func RenderJSON(w io.Writer, boards usecase.Leaderboards) error {
	enc := sonic.ConfigDefault.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(boards); err != nil {
		return fmt.Errorf("render leaderboards json: %w", err)
	}

	return nil
}
