// Command merchcal prints retail and fiscal merch calendar dates.
package main

func main() {
	Execute()
}
