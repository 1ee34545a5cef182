package main

import "github.com/talentgate/careers_backend/cmd"

func main() {
	cmd.Execute()
}
