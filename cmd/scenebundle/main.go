// Copyright © 2018 One Concern

package main

import (
	"github.com/oneconcern/scenebundle/cmd/scenebundle/cmd"
)

func main() {
	cmd.Execute()
}
