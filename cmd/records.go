package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// withStore opens the record environment for the duration of fn.
func withStore(cmd *cobra.Command, fn func(ctx context.Context, e *env) error) error {
	e, err := openRecordEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	return fn(cmd.Context(), e)
}

func truncate(s string, n int) string {
	if len([]rune(s)) <= n {
		return s
	}
	return string([]rune(s)[:n-3]) + "..."
}
