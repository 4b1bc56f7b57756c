package main

import (
	"fmt"
	"os"

	"github.com/ribgsilva/mindful-notes/app/cmd/client"
	"github.com/ribgsilva/mindful-notes/platform/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var log *zap.SugaredLogger

var rootCmd = &cobra.Command{
	Use:   "mindful-notes",
	Short: "Keep personal notes, tagged with a color",
	Long: `mindful-notes keeps the notes of the logged in user in the notes database.
The login is kept in SESSION_DIR between runs.`,
	SilenceUsage: true,
}

func main() {
	l, err := logger.New("Notes-CLI", "stderr")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	log = l
	defer func() {
		_ = log.Sync()
	}()

	client.LoadConfigs(log)

	if err := rootCmd.Execute(); err != nil {
		_ = log.Sync()
		os.Exit(1)
	}
}
