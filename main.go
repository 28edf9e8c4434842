package main

import (
	"fmt"
	"os"

	"github.com/gqlcgen/gqlcgen/cmd"
)

var cli *cmd.CommandLine

func init() {
	cli = cmd.NewCLI()
	cli.AllowPlugins("gqlcgen-compiler-")
}

func main() {
	if err := cli.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
