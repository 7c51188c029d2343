// Command audiofeat extracts audio features from files and directories
// into CSV or JSON tables, one row per file.
package main

func main() {
	Execute()
}
