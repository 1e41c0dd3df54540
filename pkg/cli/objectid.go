package cli

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/getidgen/idgen/pkg/objectid"
	"github.com/spf13/cobra"
)

var oidTimestamp string

var oidCmd = &cobra.Command{
	Use:     "oid",
	Aliases: []string{"objectid"},
	Short:   "Generate ObjectIds",
	Long: `Generate MongoDB-style ObjectIds: a 4-byte Unix-second timestamp, a
5-byte per-process random machine value, and a 3-byte counter, encoded as
24 lowercase hex characters.

The counter starts at a random value and increments once per identifier,
wrapping silently at 2^24, so a batch from one invocation shares its
timestamp second and machine value.`,
	Example: `  idgen oid
  idgen oid -n 5
  idgen objectid --timestamp 1608346624`,
	RunE: runObjectID,
}

func init() {
	oidCmd.Flags().StringVar(&oidTimestamp, "timestamp", "", "Unix-second timestamp override")
	rootCmd.AddCommand(oidCmd)
}

func runObjectID(cmd *cobra.Command, args []string) error {
	var opts []objectid.Option
	if cmd.Flags().Changed("timestamp") {
		sec, err := strconv.ParseUint(oidTimestamp, 10, 32)
		if err != nil {
			return fmt.Errorf("%w: %q is not an unsigned 32-bit integer", objectid.ErrInvalidTimestamp, oidTimestamp)
		}
		opts = append(opts, objectid.WithTimestamp(uint32(sec)))
	}

	gen, err := objectid.NewGenerator(opts...)
	if err != nil {
		return err
	}
	logger.Debug("generating objectids", slog.Int("num", num))
	return emit(cmd, num, func() (string, error) {
		return gen.Next().String(), nil
	})
}
