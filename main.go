package main

import "p2p-recon/cmd"

func main() {
	cmd.Execute()
}
