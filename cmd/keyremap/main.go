// Command keyremap rewrites keyboard shortcuts in XML keymap files.
package main

func main() {
	execute()
}
