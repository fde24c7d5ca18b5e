package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v3"
)

// ConfigAction prints the effective configuration, or writes it to the file
// named by --write.
func ConfigAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(ctx, cmd)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	if path := cmd.String("write"); path != "" {
		if err := appCtx.Config.SaveConfig(path); err != nil {
			return err
		}
		fmt.Fprintf(out(cmd), "Configuration written to %s\n", path)
		return nil
	}

	shown := *appCtx.Config
	if shown.Storage.SupabaseKey != "" {
		shown.Storage.SupabaseKey = "********"
	}
	data, err := json.MarshalIndent(shown, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	fmt.Fprintln(out(cmd), string(data))
	return nil
}
