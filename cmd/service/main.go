package main

import (
	"os"
	"scrapquote/internal/app"

	"github.com/spf13/cobra"
	_ "go.uber.org/automaxprocs"
)

var rootCmd = &cobra.Command{
	Use:   "scrapquote",
	Short: "Scrap vehicle quotes, pickup requests and call routing",
	Long: `scrapquote looks up curb weights of vehicles in the vPIC canadian specifications,
prices them for scrap, stores pickup requests and routes inbound calls.`,
	RunE: serve,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  serve,
}

func init() {
	rootCmd.PersistentFlags().String("port", "8080", "port to listen on, overrides PORT")
	rootCmd.AddCommand(serveCmd)
}

func serve(cmd *cobra.Command, _ []string) error {
	application := app.New(cmd.Flags())
	if code := application.Run(); code != 0 {
		os.Exit(code)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
