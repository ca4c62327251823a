package main

import "github.com/OpenTraceLab/OpenTracePCB/cmd/otp/cmd"

func main() {
	cmd.Execute()
}
