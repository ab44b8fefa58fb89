package main

import "wristcomp/cmd/wristcomp/root"

func main() {
	root.Execute()
}
