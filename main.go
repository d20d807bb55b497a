package main

import "stock-audit/cmd"

func main() {
	cmd.Execute()
}
