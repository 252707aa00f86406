package main

import "github.com/quicknotes/notes-api/cmd"

func main() {
	cmd.Execute()
}
