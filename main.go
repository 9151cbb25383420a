package main

import "github.com/fscarmen2/LightProxy/internal/cmd"

func main() {
	cmd.Execute()
}
