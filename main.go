package main

import (
	"os"

	"github.com/xiaosa-zhz/hidtool/cmd"
)

var version = "dev"

func main() {
	os.Exit(cmd.Execute(version))
}
