// Command sleepctl runs the sleep analysis engine from the command line.
package main

func main() {
	Execute()
}
