package main

import "github.com/winston6800/Jobclick/cmd/jobclick/root"

func main() {
	root.Execute()
}
