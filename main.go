package main

import "github.com/ai-solution/site-backend/cmd"

func main() {
	cmd.Init()
}
