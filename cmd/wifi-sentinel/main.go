package main

import "github.com/enzomchang/wifi-sentinel/cmd/wifi-sentinel/cmd"

func main() {
	cmd.Execute()
}
