package main

import "github.com/NVIDIA/cluster-archive/pkg/cli"

func main() {
	cli.Execute()
}
