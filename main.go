package main

import "github.com/SAIRAALMAS88/AI-FYP/cmd"

func main() {
	cmd.Execute()
}
