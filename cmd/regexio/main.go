// Command regexio demonstrates building regular expression pattern strings
// with the fluent regexio API.
package main

func main() {
	Execute()
}
