package main

import "github.com/NicolasCard/RAPZ/cmd"

func main() {
	cmd.Execute()
}
