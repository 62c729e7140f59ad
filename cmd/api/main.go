// The api command runs the e-commerce data management API.
//
//	api serve    start the HTTP server
//	api migrate  apply pending database migrations and exit
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "api",
	Short: "E-commerce data management API",
	Long: `HTTP JSON API managing users, products, and orders over PostgreSQL,
with background email jobs and an optional Redis product cache.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
