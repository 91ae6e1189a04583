package main

import (
	"net/http"

	"github.com/spf13/cobra"

	webgin "github.com/foladipo/docs-cabinet-cp2-sub000/gin"
)

var ServeCmd = cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		handler, err := webgin.New(documentStore, userStore, tokens, hasher, defaults)
		if err != nil {
			logger.Fatal("could not create server:", err)
		}

		addr := config.Web.Addr
		if addr == "" {
			addr = ":1705"
		}

		logger.Printf("server started, listening on %s", addr)
		if err := http.ListenAndServe(addr, handler); err != nil {
			logger.Fatal("server stopped:", err)
		}
	},
}

func init() {
	RootCmd.AddCommand(&ServeCmd)
}
