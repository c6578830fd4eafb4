package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"twreq/internal/client"
)

var (
	version  = "dev"
	revision = "none"
	date     = "unknown"
)

func main() {
	var (
		params  []string
		verbose bool
	)

	c := &cobra.Command{
		Use:     "twreq TEMPLATE_FILE",
		Short:   "Send a raw OAuth1-signed request to the Twitter API",
		Version: fmt.Sprintf("%s - build %.7s @ %s", version, revision, date),
		Args:    cobra.ExactArgs(1),
		PreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
		RunE: func(_ *cobra.Command, args []string) error {
			return client.Run(args[0], params)
		},
	}
	c.Flags().StringArrayVarP(&params, "param", "p", nil, "Override a template parameter (KEY=VALUE, repeatable)")
	c.Flags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	if err := c.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
