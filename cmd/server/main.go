package main

import "github.com/yukikurage/taskforce/internal/cmd"

func main() {
	cmd.Execute()
}
