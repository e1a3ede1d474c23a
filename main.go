package main

import "github.com/jsphweid/genecomposer/cmd"

func main() {
	cmd.Execute()
}
