package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/versescope/versescope/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the parallel reader web UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		ref, err := defaultReference()
		if err != nil {
			return err
		}
		client, err := newTextClient(cmd)
		if err != nil {
			return err
		}

		ctrl := newController(cmd.Context(), client, selectTranslations(cat, nil), ref)
		srv := server.New(ctrl, cat, viper.GetString("server.username"), viper.GetString("server.password"))
		return srv.Start(cmd.Context(), viper.GetString("server.listen"))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("listen", ":8080", "HTTP listen address")
	serveCmd.Flags().String("user", "", "Basic auth username")
	serveCmd.Flags().String("pass", "", "Basic auth password")
	viper.BindPFlag("server.listen", serveCmd.Flags().Lookup("listen"))
	viper.BindPFlag("server.username", serveCmd.Flags().Lookup("user"))
	viper.BindPFlag("server.password", serveCmd.Flags().Lookup("pass"))
}
