package main

import "github.com/vadiminshakov/micros/cmd"

func main() {
	cmd.Execute()
}
