package main

import (
	"os"

	"github.com/sebas-fontys/OR5-paintshop/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
