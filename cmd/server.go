package cmd

import (
	"context"

	"musicgraph/logger"
	"musicgraph/server"

	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "启动音乐目录 HTTP 服务",
	Long:  `连接图数据库（以及可选的 Redis 缓存），提供音乐目录的读写 API`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}

func runServer(ctx context.Context) error {
	a, err := openApp(ctx, true)
	if err != nil {
		return err
	}
	defer a.Close()

	handler := server.NewAPIHandler(a.reader, a.writer, a.catalog)
	return server.Start(ctx, cfg, server.NewRouter(handler))
}

func logWarn(msg string, err error) {
	logger.Warn(msg, logger.ErrorField(err))
}
