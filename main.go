package main

import "github.com/theirongolddev/periodtrack/cmd"

func main() {
	cmd.Execute()
}
