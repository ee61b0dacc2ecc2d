// Command tripctl prints the trip board in a terminal.
package main

func main() {
	Execute()
}
