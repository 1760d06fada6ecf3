// Copyright © 2024 The Ember authors

package main

import "github.com/emberlang/ember/cmd"

func main() {
	cmd.Execute()
}
