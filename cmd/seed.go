package cmd

import (
	"fmt"

	"musicgraph/seed"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "清空并导入示例音乐目录",
	Long:  `创建表结构，清空所有集合，然后通过写入引擎导入示例艺人、专辑、曲目、用户和歌单。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), true)
		if err != nil {
			return err
		}
		defer a.Close()

		sum, err := seed.NewLoader(a.store, a.writer).Load(cmd.Context())
		if err != nil {
			return err
		}
		// 旧缓存作废
		a.catalog.Invalidate(cmd.Context())

		fmt.Printf("Seeded %d genres, %d users, %d artists, %d albums, %d tracks, %d playlists (%d entries).\n",
			sum.Genres, sum.Users, sum.Artists, sum.Albums, sum.Tracks, sum.Playlists, sum.Entries)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
