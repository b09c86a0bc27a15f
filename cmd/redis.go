package cmd

import (
	"fmt"

	"musicgraph/cache"

	"github.com/spf13/cobra"
)

var redisInvalidate bool

var redisCmd = &cobra.Command{
	Use:   "redis",
	Short: "Redis连接测试",
	Long:  `测试Redis连接是否成功。加上 --invalidate 时让所有已缓存的目录读取失效。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Redis配置: %s, DB: %d\n", cfg.RedisAddr, cfg.RedisDB)
		if cfg.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is not set")
		}

		client, err := cache.Connect(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer cache.Close(client)
		fmt.Println("Redis连接成功！")

		if redisInvalidate {
			cache.NewCatalog(client, cfg.CacheTTL).Invalidate(cmd.Context())
			fmt.Println("目录缓存已失效。")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(redisCmd)
	redisCmd.Flags().BoolVar(&redisInvalidate, "invalidate", false, "让所有已缓存的目录读取失效")
}
