// Command sweetbliss runs the Sweet Bliss marketing site: schema migration,
// content bootstrap and the HTTP server.
package main

func main() {
	Execute()
}
