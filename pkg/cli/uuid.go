package cli

import (
	"fmt"
	"log/slog"

	"github.com/getidgen/idgen/pkg/uuid"
	"github.com/spf13/cobra"
)

var (
	uuidVersion   int
	uuidTimestamp string
	uuidNamespace string
	uuidName      string
	uuidNodeID    string
	uuidData      string
)

var uuidCmd = &cobra.Command{
	Use:   "uuid",
	Short: "Generate UUIDs",
	Long: `Generate UUIDs in their canonical lowercase hex-and-hyphen encoding.

The version selects the layout:
  1  Gregorian timestamp + clock sequence + node (--timestamp, --node-id)
  3  MD5 of a namespace and a name (--namespace, --name)
  4  random
  5  SHA-1 of a namespace and a name (--namespace, --name)
  6  version 1 with the timestamp reordered for sortability (--timestamp, --node-id)
  7  Unix-millisecond timestamp + random (--timestamp)
  8  caller-supplied payload (--data)

For versions 1 and 6, --timestamp is the raw 60-bit field value in 100-ns
ticks since 1582-10-15. For version 7 it is Unix milliseconds. --namespace
accepts the well-known names dns, url, oid, and x500, or any UUID literal.`,
	Example: `  idgen uuid
  idgen uuid -v 7 -n 10
  idgen uuid -v 5 --namespace dns --name example.com
  idgen uuid -v 1 --node-id 00:1a:2b:3c:4d:5e
  idgen uuid -v 8 --data 0102030405060708090a0b0c0d0e0f10`,
	RunE: runUUID,
}

func init() {
	uuidCmd.Flags().IntVarP(&uuidVersion, "version", "v", defaults.UUIDVersion, "UUID version (1, 3, 4, 5, 6, 7, 8)")
	uuidCmd.Flags().StringVar(&uuidTimestamp, "timestamp", "", "Timestamp override (v1/v6: 100-ns ticks since 1582-10-15, v7: Unix ms)")
	uuidCmd.Flags().StringVar(&uuidNamespace, "namespace", "", "Namespace for v3/v5 (dns, url, oid, x500, or a UUID)")
	uuidCmd.Flags().StringVar(&uuidName, "name", "", "Name to hash for v3/v5")
	uuidCmd.Flags().StringVar(&uuidNodeID, "node-id", "", "48-bit node for v1/v6 (aa:bb:cc:dd:ee:ff)")
	uuidCmd.Flags().StringVar(&uuidData, "data", "", "Hex payload for v8 (up to 32 hex chars, zero-padded)")
	rootCmd.AddCommand(uuidCmd)
}

func runUUID(cmd *cobra.Command, args []string) error {
	version := uuid.Version(uuidVersion)
	if !version.Supported() {
		return fmt.Errorf("unsupported UUID version %d (supported: 1, 3, 4, 5, 6, 7, 8)", uuidVersion)
	}
	cfg, err := buildUUIDConfig(cmd, version)
	if err != nil {
		return err
	}

	gen := uuid.NewGenerator()
	logger.Debug("generating uuids", slog.Int("version", uuidVersion), slog.Int("num", num))
	return emit(cmd, num, func() (string, error) {
		u, err := gen.Generate(cfg)
		if err != nil {
			return "", err
		}
		return u.String(), nil
	})
}

// buildUUIDConfig validates the per-version flag combination and
// assembles the generator config.
func buildUUIDConfig(cmd *cobra.Command, version uuid.Version) (uuid.Config, error) {
	cfg := uuid.Config{Version: version}

	if cmd.Flags().Changed("timestamp") {
		switch version {
		case uuid.V1, uuid.V6, uuid.V7:
		default:
			return cfg, fmt.Errorf("--timestamp applies only to UUID versions 1, 6, and 7")
		}
		ts, err := parseTimestamp(uuidTimestamp)
		if err != nil {
			return cfg, err
		}
		cfg.Timestamp = &ts
	}

	switch version {
	case uuid.V3, uuid.V5:
		if uuidNamespace == "" || uuidName == "" {
			return cfg, fmt.Errorf("UUID version %d requires --namespace and --name", version)
		}
		ns, err := uuid.ParseNamespace(uuidNamespace)
		if err != nil {
			return cfg, err
		}
		cfg.Namespace = &ns
		cfg.Name = uuidName
	default:
		if uuidNamespace != "" || uuidName != "" {
			return cfg, fmt.Errorf("--namespace and --name apply only to UUID versions 3 and 5")
		}
	}

	if uuidNodeID != "" {
		if version != uuid.V1 && version != uuid.V6 {
			return cfg, fmt.Errorf("--node-id applies only to UUID versions 1 and 6")
		}
		node, err := parseNodeID(uuidNodeID)
		if err != nil {
			return cfg, err
		}
		cfg.NodeID = &node
	}

	if version == uuid.V8 {
		if uuidData == "" {
			return cfg, fmt.Errorf("UUID version 8 requires --data")
		}
		data, err := parseData(uuidData)
		if err != nil {
			return cfg, err
		}
		cfg.Data = data
	} else if uuidData != "" {
		return cfg, fmt.Errorf("--data applies only to UUID version 8")
	}

	return cfg, nil
}
