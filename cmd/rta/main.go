// Command rta prints the fixed point of each task in the built-in task set.
package main

import "github.com/sarchlab/rta/cmd/rta/cmd"

func main() {
	cmd.Execute()
}
