package cmd

import (
	"fmt"

	"musicgraph/storage"

	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "导出目录快照到 MinIO",
	Long:  `把所有节点集合和边集合导出为 JSON 对象，存放在 snapshots/<UTC时间>/ 目录下。存储桶不存在时自动创建。`,
	Example: `  # 导出到默认存储桶
  musicgraph snapshot

  # 指定存储桶
  MINIO_BUCKET=backups musicgraph snapshot`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := storage.NewMinioClient(cfg)
		if err != nil {
			return err
		}

		a, err := openApp(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer a.Close()

		res, err := storage.NewSnapshotExporter(client, cfg.MinioBucket, a.reader).Export(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Snapshot written to %s/%s\n", cfg.MinioBucket, res.Prefix)
		for _, obj := range res.Objects {
			fmt.Printf("  %s\n", obj)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
}
