package main

import cmd "github.com/kerbaras/quran/cmd/quran"

func main() {
	cmd.Execute()
}
