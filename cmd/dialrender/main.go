// Command dialrender draws an HSV dial without a window and answers
// hit-testing questions about it.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
