package main

import (
	"os"

	"github.com/spf13/cobra"

	"lumistream/internal/interfaces/cli/migrate"
	"lumistream/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lumistream",
		Short: "LumiStream - IPTV storefront support backend",
		Long:  `LumiStream is the support and notification backend of the LumiStream storefront, with a built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
