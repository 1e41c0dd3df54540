package cli

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/getidgen/idgen/pkg/ulid"
	"github.com/spf13/cobra"
)

var ulidTimestamp string

var ulidCmd = &cobra.Command{
	Use:   "ulid",
	Short: "Generate ULIDs",
	Long: `Generate ULIDs: 48 bits of Unix-millisecond timestamp followed by 80
bits of randomness, encoded as 26 Crockford Base32 characters.

Within a single batch, identifiers sharing a millisecond are made strictly
increasing by incrementing the random component, so the batch sorts in
generation order.`,
	Example: `  idgen ulid
  idgen ulid -n 100
  idgen ulid --timestamp 1469922850259`,
	RunE: runULID,
}

func init() {
	ulidCmd.Flags().StringVar(&ulidTimestamp, "timestamp", "", "Unix-millisecond timestamp override")
	rootCmd.AddCommand(ulidCmd)
}

func runULID(cmd *cobra.Command, args []string) error {
	var opts []ulid.Option
	if cmd.Flags().Changed("timestamp") {
		ms, err := strconv.ParseUint(ulidTimestamp, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %q is not an unsigned integer", ulid.ErrInvalidTimestamp, ulidTimestamp)
		}
		opts = append(opts, ulid.WithTimestamp(ms))
	}

	gen, err := ulid.NewGenerator(opts...)
	if err != nil {
		return err
	}
	logger.Debug("generating ulids", slog.Int("num", num))
	return emit(cmd, num, func() (string, error) {
		u, err := gen.Next()
		if err != nil {
			return "", err
		}
		return u.String(), nil
	})
}
