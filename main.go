package main

import "github.com/pratik30111991/chatgpt-automation-vps/cmd"

func main() {
	cmd.Execute()
}
